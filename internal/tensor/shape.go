package tensor

import (
	"fmt"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Dim returns dimension i. Negative indices count from the end (-1 = last).
func (s Shape) Dim(i int) int {
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("dimension %d out of range for rank %d", i, len(s)))
	}
	return s[i]
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Any marks a symbolic dimension in a Pattern: any size is accepted.
const Any = -1

// Pattern is an expected shape where some dimensions may be symbolic.
//
// Example:
//
//	Pattern{Any, Any, Any, 3} // (batch, height, width, 3)
type Pattern []int

// Matches reports whether s has the pattern's rank and every fixed
// dimension of the pattern equals the corresponding dimension of s.
func (p Pattern) Matches(s Shape) bool {
	if len(p) != len(s) {
		return false
	}
	for i, want := range p {
		if want != Any && s[i] != want {
			return false
		}
	}
	return true
}

// Mismatch returns the index of the first fixed dimension of the pattern
// that s does not satisfy, or -1 when there is none. Ranks must agree.
func (p Pattern) Mismatch(s Shape) int {
	for i, want := range p {
		if i >= len(s) {
			return i
		}
		if want != Any && s[i] != want {
			return i
		}
	}
	return -1
}

// String formats the pattern with symbolic dimensions shown as "?".
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, d := range p {
		if d == Any {
			parts[i] = "?"
		} else {
			parts[i] = fmt.Sprint(d)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
