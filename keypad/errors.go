package keypad

import (
	"errors"
	"fmt"
)

// ErrNoResponse is the transport failure for a request the device never
// answered within the receive timeout.
var ErrNoResponse = errors.New("no response from device")

// ConfigError marks invalid user-supplied configuration: unknown modifier or
// action names, out-of-range key/knob ids, characters the layout table
// cannot type. Callers present these directly instead of treating them as
// internal failures.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// NewConfigError builds a ConfigError with a fixed message.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{msg: msg}
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err (or anything it wraps) is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
