package tensor

import "gonum.org/v1/gonum/mat"

// Zeros creates a dense array filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) *Dense {
	d, err := NewDense(make([]float64, shape.NumElements()), shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return d
}

// Full creates a dense array filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	d, err := NewDense(data, shape)
	if err != nil {
		panic(err)
	}
	return d
}

// Arange creates a 1-D dense array with values 0, 1, ..., n-1.
//
// Example:
//
//	t := tensor.Arange(10) // [0, 1, 2, ..., 9]
func Arange(n int) *Dense {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	d, err := NewDense(data, Shape{n})
	if err != nil {
		panic(err)
	}
	return d
}

// Eye creates an n×n identity factor matrix.
//
// Example:
//
//	m := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
