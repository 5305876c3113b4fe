package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gscnn/internal/tensor"
)

func raw(t *testing.T, dtype tensor.DataType, shape ...int) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(tensor.Shape(shape), dtype)
	require.NoError(t, err)
	return r
}

func requireKind(t *testing.T, err error, kind Kind, role string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected *ValidationError, got %T", err)
	assert.Equal(t, kind, validationErr.Kind)
	assert.Equal(t, role, validationErr.Role)
	return validationErr
}

func TestValidateEdgeTensor(t *testing.T) {
	tests := []struct {
		name    string
		tensor  *tensor.RawTensor
		wantErr Kind
	}{
		{"valid", raw(t, tensor.Float32, 4, 16, 16, 2), ""},
		{"valid batch of one", raw(t, tensor.Float32, 1, 3, 5, 2), ""},
		{"one channel", raw(t, tensor.Float32, 4, 16, 16, 1), KindShapeMismatch},
		{"three channels", raw(t, tensor.Float32, 4, 16, 16, 3), KindShapeMismatch},
		{"rank 3", raw(t, tensor.Float32, 16, 16, 2), KindShapeMismatch},
		{"float64", raw(t, tensor.Float64, 4, 16, 16, 2), KindTypeMismatch},
		{"uint8", raw(t, tensor.Uint8, 4, 16, 16, 2), KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEdgeTensor(tt.tensor)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			requireKind(t, err, tt.wantErr, RoleEdges)
		})
	}
}

func TestValidateLabelTensor(t *testing.T) {
	t.Run("two channels pass", func(t *testing.T) {
		require.NoError(t, ValidateLabelTensor(raw(t, tensor.Float32, 2, 8, 8, 2)))
	})

	t.Run("many channels pass", func(t *testing.T) {
		require.NoError(t, ValidateLabelTensor(raw(t, tensor.Float32, 2, 8, 8, 19)))
	})

	t.Run("one channel is invalid value", func(t *testing.T) {
		err := ValidateLabelTensor(raw(t, tensor.Float32, 2, 8, 8, 1))
		validationErr := requireKind(t, err, KindInvalidValue, RoleLabel)
		assert.Equal(t, "must have at least 2 channels in label", validationErr.Details)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Contains(t, err.Error(), "must have at least 2 channels in label")

		var assertErr *AssertionError
		assert.False(t, errors.As(err, &assertErr), "raw assertion error must not leak")
	})

	t.Run("rank checked before channels", func(t *testing.T) {
		err := ValidateLabelTensor(raw(t, tensor.Float32, 8, 8, 1))
		requireKind(t, err, KindShapeMismatch, RoleLabel)
	})

	t.Run("channels checked before dtype", func(t *testing.T) {
		err := ValidateLabelTensor(raw(t, tensor.Int32, 2, 8, 8, 1))
		requireKind(t, err, KindInvalidValue, RoleLabel)
	})

	t.Run("wrong dtype", func(t *testing.T) {
		err := ValidateLabelTensor(raw(t, tensor.Float64, 2, 8, 8, 2))
		requireKind(t, err, KindTypeMismatch, RoleLabel)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestValidateImageTensor(t *testing.T) {
	tests := []struct {
		name    string
		tensor  *tensor.RawTensor
		wantErr Kind
	}{
		{"rgb", raw(t, tensor.Float32, 2, 32, 24, 3), ""},
		{"rgba", raw(t, tensor.Float32, 2, 32, 24, 4), KindShapeMismatch},
		{"gray", raw(t, tensor.Float32, 2, 32, 24, 1), KindShapeMismatch},
		{"rank 5", raw(t, tensor.Float32, 1, 2, 32, 24, 3), KindShapeMismatch},
		{"float64", raw(t, tensor.Float64, 2, 32, 24, 3), KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageTensor(tt.tensor)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			requireKind(t, err, tt.wantErr, RoleImage)
		})
	}
}

func TestValidatorsAcceptTypedTensors(t *testing.T) {
	image := tensor.Zeros[float32](tensor.Shape{1, 4, 4, 3})
	require.NoError(t, ValidateImageTensor(image))

	edges := tensor.Zeros[uint8](tensor.Shape{1, 4, 4, 2})
	requireKind(t, ValidateEdgeTensor(edges), KindTypeMismatch, RoleEdges)
}

func TestNilTensor(t *testing.T) {
	var typed *tensor.Tensor[float32]
	var rawNil *tensor.RawTensor

	requireKind(t, ValidateImageTensor(nil), KindShapeMismatch, RoleImage)
	requireKind(t, ValidateImageTensor(typed), KindShapeMismatch, RoleImage)
	requireKind(t, ValidateEdgeTensor(rawNil), KindShapeMismatch, RoleEdges)
}

func TestAssertGreaterEqual(t *testing.T) {
	require.NoError(t, AssertGreaterEqual(2, 2))
	require.NoError(t, AssertGreaterEqual(3, 2))

	err := AssertGreaterEqual(1, 2)
	var assertErr *AssertionError
	require.True(t, errors.As(err, &assertErr))
	assert.Equal(t, 1, assertErr.X)
	assert.Equal(t, 2, assertErr.Y)
	assert.Equal(t, "assertion failed: x >= y (x = 1, y = 2)", err.Error())
}

func TestValidationErrorIs(t *testing.T) {
	err := &ValidationError{Kind: KindShapeMismatch, Role: RoleEdges, Details: "rank 3, want 4"}
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, `shape_mismatch: tensor "edges": rank 3, want 4`, err.Error())

	bare := &ValidationError{Kind: KindPreconditionViolation, Details: "label must be of shape (h, w)"}
	assert.Equal(t, "precondition_violation: label must be of shape (h, w)", bare.Error())
	assert.ErrorIs(t, bare, ErrPreconditionViolation)
}
