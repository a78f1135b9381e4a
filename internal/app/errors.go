package service

import "errors"

// Request precondition failures. Callers match them with errors.Is.
var (
	ErrEmptyPool         = errors.New("player pool is empty")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidHeadcount  = errors.New("invalid headcount")
	ErrUnknownFormation  = errors.New("unknown formation")
	ErrFormationMismatch = errors.New("formation larger than team")
	ErrUnknownPosition   = errors.New("unknown position")
)

// errorType names err for metrics labels.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrEmptyPool):
		return "empty_pool"
	case errors.Is(err, ErrInvalidPlayer):
		return "invalid_player"
	case errors.Is(err, ErrInvalidHeadcount):
		return "invalid_headcount"
	case errors.Is(err, ErrUnknownFormation):
		return "unknown_formation"
	case errors.Is(err, ErrFormationMismatch):
		return "formation_mismatch"
	default:
		return "internal"
	}
}
