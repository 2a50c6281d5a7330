// Package status defines the closed set of outcome codes returned by the fallible
// raw-memory operations.
//
// Codes are plain values rather than errors so that range routines stay allocation
// free on the hot path. Callers that prefer error values convert with Code.Err:
//
//	if err := mem.CopyWithin(buf, 20, 0, 108).Err(); err != nil {
//	    return fmt.Errorf("shift: %w", err)
//	}
package status

import (
	"errors"
	"fmt"
)

// Code indicates the outcome of an operation.
type Code uint8

const (
	// Success means the operation was executed successfully.
	Success Code = 0
	// IllegalArgument means at least one argument is invalid (nil buffer, negative length).
	IllegalArgument Code = 1
	// IllegalState means some data is in an illegal state.
	IllegalState Code = 2
	// IndexOutOfRange means an index range falls outside its buffer.
	IndexOutOfRange Code = 3
)

var (
	// ErrIllegalArgument is returned by Code.Err for IllegalArgument.
	ErrIllegalArgument = errors.New("status: illegal argument")

	// ErrIllegalState is returned by Code.Err for IllegalState.
	ErrIllegalState = errors.New("status: illegal state")

	// ErrIndexOutOfRange is returned by Code.Err for IndexOutOfRange.
	ErrIndexOutOfRange = errors.New("status: index out of range")
)

// String returns the name of the code.
func (c Code) String() string {
	switch c {
	case Success:
		return "Success"
	case IllegalArgument:
		return "IllegalArgument"
	case IllegalState:
		return "IllegalState"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// OK reports whether c is Success.
func (c Code) OK() bool {
	return c == Success
}

// Err returns nil for Success and the matching sentinel error otherwise.
// Unknown codes map to an error wrapping ErrIllegalState.
func (c Code) Err() error {
	switch c {
	case Success:
		return nil
	case IllegalArgument:
		return ErrIllegalArgument
	case IllegalState:
		return ErrIllegalState
	case IndexOutOfRange:
		return ErrIndexOutOfRange
	default:
		return fmt.Errorf("%w: unknown %s", ErrIllegalState, c)
	}
}

// FromError maps an error produced by Code.Err back to its Code.
func FromError(err error) Code {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrIllegalArgument):
		return IllegalArgument
	case errors.Is(err, ErrIndexOutOfRange):
		return IndexOutOfRange
	default:
		return IllegalState
	}
}

// MarshalText implements encoding.TextMarshaler so codes render by name in JSON.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
