package tensor

import "fmt"

// Tensor is a dense tensor with element type T.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
//	t.Set(1, 0, 2)
type Tensor[T DType] struct {
	raw *RawTensor
}

// New wraps a RawTensor. The raw tensor's dtype must match T.
func New[T DType](raw *RawTensor) *Tensor[T] {
	if want := DataTypeOf[T](); raw.DType() != want {
		panic(fmt.Sprintf("raw tensor dtype is %s, want %s", raw.DType(), want))
	}
	return &Tensor[T]{raw: raw}
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor, or nil for a nil tensor.
func (t *Tensor[T]) Raw() *RawTensor {
	if t == nil {
		return nil
	}
	return t.raw
}

// Data returns a typed slice view of the tensor's data.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case int32:
		return any(t.raw.AsInt32()).([]T)
	case int64:
		return any(t.raw.AsInt64()).([]T)
	case uint8:
		return any(t.raw.AsUint8()).([]T)
	case bool:
		return any(t.raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.Data()[t.offset(indices)] = value
}

func (t *Tensor[T]) offset(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// String returns a short description such as "Tensor[uint8][4 4 1]".
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.raw.DType(), t.raw.Shape())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{raw: t.raw.Clone()}
}

// Reshape returns a view of t with a new shape of the same element count.
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	raw, err := t.raw.Reshape(shape)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{raw: raw}, nil
}
