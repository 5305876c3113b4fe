package tensor

import "fmt"

// Number is a constraint for element types with arithmetic and ordering.
type Number interface {
	float32 | float64 | int32 | int64 | uint8
}

// Comparison operations - return bool tensors.

// EqualScalar returns t == v element-wise.
func EqualScalar[T DType](t *Tensor[T], v T) *Tensor[bool] {
	result := Zeros[bool](t.Shape())
	out := result.Data()
	for i, x := range t.Data() {
		out[i] = x == v
	}
	return result
}

// GreaterScalar returns t > v element-wise.
func GreaterScalar[T Number](t *Tensor[T], v T) *Tensor[bool] {
	result := Zeros[bool](t.Shape())
	out := result.Data()
	for i, x := range t.Data() {
		out[i] = x > v
	}
	return result
}

// Conversion

// BoolToUint8 converts a bool tensor to 0/1 uint8 values.
func BoolToUint8(t *Tensor[bool]) *Tensor[uint8] {
	result := Zeros[uint8](t.Shape())
	out := result.Data()
	for i, b := range t.Data() {
		if b {
			out[i] = 1
		}
	}
	return result
}

// Convert casts every element of t to To.
func Convert[To, From Number](t *Tensor[From]) *Tensor[To] {
	result := Zeros[To](t.Shape())
	out := result.Data()
	for i, x := range t.Data() {
		out[i] = To(x)
	}
	return result
}

// Arithmetic

// ScalarSub returns v - t element-wise.
func ScalarSub[T Number](v T, t *Tensor[T]) *Tensor[T] {
	result := Zeros[T](t.Shape())
	out := result.Data()
	for i, x := range t.Data() {
		out[i] = v - x
	}
	return result
}

// Add returns a + b element-wise. Shapes must be equal.
func Add[T Number](a, b *Tensor[T]) *Tensor[T] {
	result := a.Clone()
	AddInPlace(result, b)
	return result
}

// AddInPlace accumulates src into dst. Shapes must be equal.
func AddInPlace[T Number](dst, src *Tensor[T]) {
	if !dst.Shape().Equal(src.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch %v vs %v", dst.Shape(), src.Shape()))
	}
	out := dst.Data()
	for i, x := range src.Data() {
		out[i] += x
	}
}

// ClearGreater sets every element greater than limit to zero, in place.
func ClearGreater[T Number](t *Tensor[T], limit T) {
	data := t.Data()
	for i, x := range data {
		if x > limit {
			data[i] = 0
		}
	}
}

// CountNonZero returns the number of non-zero elements.
func CountNonZero[T Number](t *Tensor[T]) int {
	n := 0
	for _, x := range t.Data() {
		if x != 0 {
			n++
		}
	}
	return n
}

// Shape manipulation

// Stack joins equally shaped tensors along a new trailing axis.
//
// Example:
//
//	// a, b: [4, 4] -> [4, 4, 2]
//	c := tensor.Stack([]*Tensor[uint8]{a, b})
func Stack[T DType](tensors []*Tensor[T]) *Tensor[T] {
	if len(tensors) == 0 {
		panic("stack: at least one tensor required")
	}

	base := tensors[0].Shape()
	for i, t := range tensors[1:] {
		if !t.Shape().Equal(base) {
			panic(fmt.Sprintf("stack: tensor %d has shape %v, want %v", i+1, t.Shape(), base))
		}
	}

	k := len(tensors)
	outShape := append(base.Clone(), k)
	result := Zeros[T](outShape)
	out := result.Data()
	for c, t := range tensors {
		for i, x := range t.Data() {
			out[i*k+c] = x
		}
	}
	return result
}

// Channel extracts index c of the last axis, dropping that axis.
//
// Example:
//
//	// x: [4, 4, 3] -> [4, 4]
//	g := tensor.Channel(x, 1)
func Channel[T DType](t *Tensor[T], c int) *Tensor[T] {
	shape := t.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("channel: need rank >= 2, got %v", shape))
	}
	k := shape[len(shape)-1]
	if c < 0 || c >= k {
		panic(fmt.Sprintf("channel: index %d out of range for %d channels", c, k))
	}

	result := Zeros[T](shape[:len(shape)-1])
	out := result.Data()
	in := t.Data()
	for i := range out {
		out[i] = in[i*k+c]
	}
	return result
}

// Pad2D pads the first two axes of t by n elements on each side with value.
// Trailing axes are left unchanged.
//
// Example:
//
//	// x: [4, 4, 3] -> [6, 6, 3]
//	p := tensor.Pad2D(x, 1, 0)
func Pad2D[T DType](t *Tensor[T], n int, value T) *Tensor[T] {
	shape := t.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("pad2d: need rank >= 2, got %v", shape))
	}
	if n < 0 {
		panic(fmt.Sprintf("pad2d: negative padding %d", n))
	}

	h, w := shape[0], shape[1]
	inner := Shape(shape[2:]).NumElements()

	outShape := shape.Clone()
	outShape[0] = h + 2*n
	outShape[1] = w + 2*n
	result := Full[T](outShape, value)

	out := result.Data()
	in := t.Data()
	outW := outShape[1]
	for y := 0; y < h; y++ {
		src := in[y*w*inner : (y+1)*w*inner]
		dst := out[((y+n)*outW+n)*inner:]
		copy(dst, src)
	}
	return result
}

// Crop2D returns the [top:top+h, left:left+w] window over the first two
// axes of t. Trailing axes are left unchanged.
func Crop2D[T DType](t *Tensor[T], top, left, h, w int) *Tensor[T] {
	shape := t.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("crop2d: need rank >= 2, got %v", shape))
	}
	if top < 0 || left < 0 || top+h > shape[0] || left+w > shape[1] {
		panic(fmt.Sprintf("crop2d: window [%d:%d, %d:%d] out of bounds for %v",
			top, top+h, left, left+w, shape))
	}

	inner := Shape(shape[2:]).NumElements()
	outShape := shape.Clone()
	outShape[0] = h
	outShape[1] = w
	result := Zeros[T](outShape)

	out := result.Data()
	in := t.Data()
	inW := shape[1]
	for y := 0; y < h; y++ {
		start := ((top+y)*inW + left) * inner
		copy(out[y*w*inner:(y+1)*w*inner], in[start:start+w*inner])
	}
	return result
}

// ExpandDims inserts a size-1 axis at position axis.
// Supports negative indexing (-1 = new trailing axis).
//
// Example:
//
//	// x: [4, 4] -> [4, 4, 1]
//	y := tensor.ExpandDims(x, -1)
func ExpandDims[T DType](t *Tensor[T], axis int) *Tensor[T] {
	shape := t.Shape()
	if axis < 0 {
		axis += len(shape) + 1
	}
	if axis < 0 || axis > len(shape) {
		panic(fmt.Sprintf("expand_dims: axis out of range for rank %d", len(shape)))
	}

	newShape := make(Shape, 0, len(shape)+1)
	newShape = append(newShape, shape[:axis]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[axis:]...)

	result, err := t.Reshape(newShape)
	if err != nil {
		panic(fmt.Sprintf("expand_dims: %v", err))
	}
	return result
}
