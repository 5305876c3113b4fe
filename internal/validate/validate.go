// Package validate checks that tensors fed into the training graph have the
// rank, shape and element type their role expects.
package validate

import (
	"errors"
	"fmt"

	"github.com/born-ml/gscnn/internal/tensor"
)

// Tensor roles named in validation errors.
const (
	RoleEdges = "edges"
	RoleLabel = "label"
	RoleImage = "image"
)

// MinLabelChannels is the smallest accepted channel count of a label tensor.
const MinLabelChannels = 2

// labelChannelsMessage is the fixed message for a label tensor with too few channels.
const labelChannelsMessage = "must have at least 2 channels in label"

// Described is any tensor that reports its shape and element type.
// *tensor.RawTensor and every *tensor.Tensor[T] satisfy it.
type Described interface {
	Shape() tensor.Shape
	DType() tensor.DataType
}

var (
	edgePattern  = tensor.Pattern{tensor.Any, tensor.Any, tensor.Any, 2}
	imagePattern = tensor.Pattern{tensor.Any, tensor.Any, tensor.Any, 3}
)

// ValidateEdgeTensor checks that edge is a (batch, height, width, 2)
// float32 tensor.
func ValidateEdgeTensor(edge Described) error {
	if err := AssertShapes(edge, edgePattern, RoleEdges); err != nil {
		return err
	}
	return AssertType(edge, tensor.Float32, RoleEdges)
}

// ValidateLabelTensor checks that label is a rank-4 float32 tensor with at
// least two channels.
func ValidateLabelTensor(label Described) error {
	if err := AssertRank(label, 4, RoleLabel); err != nil {
		return err
	}

	if err := AssertGreaterEqual(label.Shape().Dim(-1), MinLabelChannels); err != nil {
		var assertErr *AssertionError
		if errors.As(err, &assertErr) {
			return &ValidationError{
				Kind:    KindInvalidValue,
				Role:    RoleLabel,
				Details: labelChannelsMessage,
			}
		}
		return err
	}

	return AssertType(label, tensor.Float32, RoleLabel)
}

// ValidateImageTensor checks that image is a (batch, height, width, 3)
// float32 tensor.
func ValidateImageTensor(image Described) error {
	if err := AssertShapes(image, imagePattern, RoleImage); err != nil {
		return err
	}
	return AssertType(image, tensor.Float32, RoleImage)
}

// AssertRank fails with KindShapeMismatch unless t has exactly rank dimensions.
func AssertRank(t Described, rank int, role string) error {
	if isNil(t) {
		return nilTensor(role)
	}
	if got := t.Shape().Rank(); got != rank {
		return &ValidationError{
			Kind:    KindShapeMismatch,
			Role:    role,
			Details: fmt.Sprintf("rank %d, want %d (shape %v)", got, rank, t.Shape()),
		}
	}
	return nil
}

// AssertShapes fails with KindShapeMismatch unless t's shape matches pattern.
// Symbolic dimensions (tensor.Any) accept any size.
func AssertShapes(t Described, pattern tensor.Pattern, role string) error {
	if err := AssertRank(t, len(pattern), role); err != nil {
		return err
	}
	shape := t.Shape()
	if pattern.Matches(shape) {
		return nil
	}
	if i := pattern.Mismatch(shape); i >= 0 {
		return &ValidationError{
			Kind:    KindShapeMismatch,
			Role:    role,
			Details: fmt.Sprintf("dimension %d is %d, want %d (shape %v, expected %v)", i, shape[i], pattern[i], shape, pattern),
		}
	}
	return nil
}

// AssertType fails with KindTypeMismatch unless t's element type is dtype.
func AssertType(t Described, dtype tensor.DataType, role string) error {
	if isNil(t) {
		return nilTensor(role)
	}
	if got := t.DType(); got != dtype {
		return &ValidationError{
			Kind:    KindTypeMismatch,
			Role:    role,
			Details: fmt.Sprintf("dtype %s, want %s", got, dtype),
		}
	}
	return nil
}

// AssertGreaterEqual returns an *AssertionError unless x >= y.
func AssertGreaterEqual(x, y int) error {
	if x < y {
		return &AssertionError{Op: ">=", X: x, Y: y}
	}
	return nil
}

func nilTensor(role string) error {
	return &ValidationError{Kind: KindShapeMismatch, Role: role, Details: "tensor is nil"}
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(t Described) bool {
	if t == nil {
		return true
	}
	switch v := t.(type) {
	case *tensor.RawTensor:
		return v == nil
	case interface{ Raw() *tensor.RawTensor }:
		return v.Raw() == nil
	}
	return false
}
