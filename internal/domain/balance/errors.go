package balance

import "errors"

var (
	ErrNoCandidates     = errors.New("no candidates to balance")
	ErrDuplicatePlayer  = errors.New("player appears more than once")
	ErrInvalidFormation = errors.New("invalid team formation")
	ErrUnknownPolicy    = errors.New("unknown open slot policy")
)
