package config

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution errors. Every failed Resolve call matches exactly one of these
// with errors.Is. The messages are shown to users verbatim.
var (
	// ErrMalformed is returned when the argument list cannot be parsed.
	ErrMalformed = errors.New("malformed arguments")
	// ErrConflictingBindOptions is returned when both -h and -s are given.
	ErrConflictingBindOptions = errors.New("Cannot specify both host and socket")
	// ErrMissingBindTarget is returned when neither -p nor -s is given.
	ErrMissingBindTarget = errors.New("Port number or socket must be specified")
	// ErrInvalidPort is returned when -p is not an unsigned 16-bit integer.
	ErrInvalidPort = errors.New("Invalid port number")
)

var (
	errRepeated    = errors.New("option given more than once")
	errHyphenValue = errors.New("value must not start with '-'")
)

// PortError records the -p value that could not be parsed.
type PortError struct {
	Value string
	Err   error
}

func (e *PortError) Error() string { return ErrInvalidPort.Error() }

// Unwrap exposes both ErrInvalidPort and the underlying parse error.
func (e *PortError) Unwrap() []error { return []error{ErrInvalidPort, e.Err} }

// UnexpectedArgsError lists positional tokens that no option consumed.
type UnexpectedArgsError []string

func (e UnexpectedArgsError) Error() string {
	return fmt.Sprintf("unexpected argument(s): %s", strings.Join(e, " "))
}

// Malformed wraps a flag parsing error so that it matches ErrMalformed.
func Malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}
