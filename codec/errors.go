package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error kinds.
var (
	// ErrInvalidLength indicates hex text of odd length.
	ErrInvalidLength = errors.New("invalid hex length")

	// ErrInvalidDigit indicates a character outside 0-9a-fA-F in hex text.
	ErrInvalidDigit = errors.New("invalid hex digit")

	// ErrInvalidUTF8 indicates a byte sequence that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// DecodeError describes a failed decode. It wraps one of the sentinel
// errors and records where in the input the problem was found.
type DecodeError struct {
	Err    error  // Underlying sentinel error
	Op     string // Operation that failed (hex, utf8)
	Offset int    // Offset of the offending character or byte
}

// Error formats the failure with its operation and, for
// digit and UTF-8 errors, the offset.
func (e *DecodeError) Error() string {
	if e.Err == ErrInvalidLength {
		return fmt.Sprintf("decoding %s: %s", e.Op, e.Err.Error())
	}

	return fmt.Sprintf(
		"decoding %s: %s at offset %d",
		e.Op, e.Err.Error(), e.Offset,
	)
}

// Unwrap returns the underlying sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a DecodeError for a failed decode.
func newDecodeError(sentinel error, op string, offset int) error {
	return &DecodeError{
		Err:    sentinel,
		Op:     op,
		Offset: offset,
	}
}
