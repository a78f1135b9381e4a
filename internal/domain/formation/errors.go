package formation

import "errors"

var (
	// ErrUnsupportedSize is returned for team sizes outside [MinSize, MaxSize].
	ErrUnsupportedSize = errors.New("unsupported team size")
	// ErrNoFormation is returned when no formation exists at or below a size.
	ErrNoFormation        = errors.New("no formation for size")
	ErrInvalidFormation   = errors.New("invalid formation")
	ErrDuplicateFormation = errors.New("duplicate formation name")
	ErrUnknownFormation   = errors.New("unknown formation")
)
