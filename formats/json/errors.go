package json

import "errors"

var (
	ErrOddDataLength = errors.New("data length must be a multiple of two")
)
