package tensor

import "errors"

// Sentinel errors for the tensor package. Callers match them with errors.Is;
// call sites add context by wrapping with fmt.Errorf("...: %w", Err...).
var (
	// ErrShapeMismatch is returned when a buffer's length disagrees with the
	// declared shape, or when a shape itself is invalid for the operation.
	ErrShapeMismatch = errors.New("tensor: buffer size disagrees with shape")

	// ErrDimensionMismatch is returned when a matrix's column count disagrees
	// with the mode size it multiplies, or a mode index is out of range.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrIndexOutOfRange is returned by positional accessors for indices
	// outside the valid range.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
)
