package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		panic(err)
	}
	return New[T](raw)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 1)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	label, err := tensor.FromSlice([]int32{0, 1, 1, 0}, Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	t := New[T](raw)
	copy(t.Data(), data)
	return t, nil
}

// FromRows creates a 2-D tensor from equal-length rows.
//
// Example:
//
//	grid, err := tensor.FromRows([][]int32{
//		{0, 0, 1},
//		{0, 1, 1},
//	})
func FromRows[T DType](rows [][]T) (*Tensor[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("at least one row required")
	}
	width := len(rows[0])
	flat := make([]T, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d elements, want %d", i, len(row), width)
		}
		flat = append(flat, row...)
	}
	return FromSlice(flat, Shape{len(rows), width})
}
