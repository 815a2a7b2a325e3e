package tensor

import (
	"fmt"
	"strings"
)

// Dense is an immutable N-dimensional array over a contiguous row-major
// float64 buffer. Every operation returns a new Dense; the internal buffer
// is never exposed directly, so instances can be shared freely.
type Dense struct {
	data      []float64
	shape     Shape
	modeNames []string
}

// NewDense creates a dense array from a buffer and a shape. The buffer is
// copied; the caller keeps ownership of the slice it passed in.
//
// Mode names are optional. When given there must be exactly one per mode;
// when omitted they default to "mode-0" ... "mode-(N-1)".
//
// Example:
//
//	t, err := tensor.NewDense([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func NewDense(data []float64, shape Shape, modeNames ...string) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("NewDense: %v: %w", err, ErrShapeMismatch)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("NewDense: shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}
	if len(modeNames) != 0 && len(modeNames) != len(shape) {
		return nil, fmt.Errorf("NewDense: %d mode names for %d modes: %w",
			len(modeNames), len(shape), ErrShapeMismatch)
	}

	names := make([]string, len(shape))
	for i := range names {
		if len(modeNames) != 0 {
			names[i] = modeNames[i]
		} else {
			names[i] = fmt.Sprintf("mode-%d", i)
		}
	}

	return &Dense{
		data:      append([]float64(nil), data...),
		shape:     shape.Clone(),
		modeNames: names,
	}, nil
}

// Shape returns a copy of the array's shape.
func (d *Dense) Shape() Shape {
	return d.shape.Clone()
}

// Order returns the number of modes.
func (d *Dense) Order() int {
	return len(d.shape)
}

// Size returns the total number of elements.
func (d *Dense) Size() int {
	return d.shape.NumElements()
}

// ModeNames returns a copy of the per-mode labels.
func (d *Dense) ModeNames() []string {
	return append([]string(nil), d.modeNames...)
}

// Data returns a copy of the underlying row-major buffer.
func (d *Dense) Data() []float64 {
	return append([]float64(nil), d.data...)
}

// At returns the element at the given multi-index.
//
// Example:
//
//	v, err := t.At(1, 2) // Row 1, column 2 of a 2-D array
func (d *Dense) At(indices ...int) (float64, error) {
	if len(indices) != len(d.shape) {
		return 0, fmt.Errorf("At: expected %d indices, got %d: %w",
			len(d.shape), len(indices), ErrIndexOutOfRange)
	}

	offset := 0
	strides := d.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			return 0, fmt.Errorf("At: index %d out of bounds for mode %d (size %d): %w",
				idx, i, d.shape[i], ErrIndexOutOfRange)
		}
		offset += idx * strides[i]
	}
	return d.data[offset], nil
}

// String returns a human-readable summary of the array.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense%v [%s]", d.shape, strings.Join(d.modeNames, ", "))
}
