// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gscnn/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Label is a constraint for element types that hold class indices.
type Label = tensor.Label

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Pattern is an expected shape whose dimensions may be symbolic.
//
// Example:
//
//	tensor.Pattern{tensor.Any, tensor.Any, tensor.Any, 3} // (b, h, w, 3)
type Pattern = tensor.Pattern

// Any marks a symbolic dimension in a Pattern.
const Any = tensor.Any

// RawTensor is the untyped tensor representation.
//
// Most users should use the typed Tensor[T] instead. RawTensor is useful
// when only shape and element type matter, as in validation.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{8, 64, 64, 3}, tensor.Float32)
//	data := raw.AsFloat32()
type RawTensor = tensor.RawTensor

// Tensor is a generic typed tensor.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	x.Set(1, 0, 2)
type Tensor[T DType] = tensor.Tensor[T]

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	x := tensor.Full[int32](tensor.Shape{4, 4}, 1)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromRows creates a 2-D tensor from equal-length rows.
func FromRows[T DType](rows [][]T) (*Tensor[T], error) {
	return tensor.FromRows(rows)
}
