package hosts

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAddress  = errors.New("invalid IPv4 address")
	ErrInvalidHostname = errors.New("invalid hostname")

	errNoDepth = errors.New("domain depth must be at least 1")
)

// FormatError is returned when user input does not parse as an address or a hostname.
type FormatError struct {
	Kind  error  // ErrInvalidAddress or ErrInvalidHostname
	Input string // Text that failed to parse
	Err   error  // Underlying parser error, may be nil
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Input)
}
func (e *FormatError) Is(target error) bool { return target == e.Kind }
func (e *FormatError) Unwrap() error        { return e.Err }
