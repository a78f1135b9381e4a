package pool

import "errors"

var (
	ErrReadPool   = errors.New("failed to read pool")
	ErrDecodePool = errors.New("failed to decode pool")
)
