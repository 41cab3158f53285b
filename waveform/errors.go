package waveform

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("pair index out of range")
)

// ConfigError reports a configuration field that failed validation, carrying
// the wire name of the field and the rejected value.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}
