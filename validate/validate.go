// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package validate guards the tensors fed into a boundary-aware
// segmentation training graph.
//
// Each validator returns nil when the tensor conforms, or a
// *ValidationError naming the failed check and the tensor's role:
//
//	if err := validate.ValidateImageTensor(batch); err != nil {
//	    return fmt.Errorf("image batch: %w", err)
//	}
//
// Use errors.Is with ErrShapeMismatch, ErrTypeMismatch, ErrInvalidValue or
// ErrPreconditionViolation to branch on the failure kind.
package validate

import (
	"github.com/born-ml/gscnn/internal/validate"
	"github.com/born-ml/gscnn/tensor"
)

// Described is any tensor that reports its shape and element type.
type Described = validate.Described

// ValidationError describes a failed check.
type ValidationError = validate.ValidationError

// AssertionError is the raw failure of a numeric comparison assertion.
type AssertionError = validate.AssertionError

// Kind classifies a validation failure.
type Kind = validate.Kind

// Validation failure kinds.
const (
	KindShapeMismatch         = validate.KindShapeMismatch
	KindTypeMismatch          = validate.KindTypeMismatch
	KindInvalidValue          = validate.KindInvalidValue
	KindPreconditionViolation = validate.KindPreconditionViolation
)

// Sentinel errors, one per Kind.
var (
	ErrShapeMismatch         = validate.ErrShapeMismatch
	ErrTypeMismatch          = validate.ErrTypeMismatch
	ErrInvalidValue          = validate.ErrInvalidValue
	ErrPreconditionViolation = validate.ErrPreconditionViolation
)

// Tensor roles.
const (
	RoleEdges = validate.RoleEdges
	RoleLabel = validate.RoleLabel
	RoleImage = validate.RoleImage
)

// ValidateEdgeTensor checks that edge is a (batch, height, width, 2) float32 tensor.
func ValidateEdgeTensor(edge Described) error {
	return validate.ValidateEdgeTensor(edge)
}

// ValidateLabelTensor checks that label is a rank-4 float32 tensor with at
// least two channels. Too few channels fail with KindInvalidValue and the
// message "must have at least 2 channels in label".
func ValidateLabelTensor(label Described) error {
	return validate.ValidateLabelTensor(label)
}

// ValidateImageTensor checks that image is a (batch, height, width, 3) float32 tensor.
func ValidateImageTensor(image Described) error {
	return validate.ValidateImageTensor(image)
}

// AssertRank fails with KindShapeMismatch unless t has exactly rank dimensions.
func AssertRank(t Described, rank int, role string) error {
	return validate.AssertRank(t, rank, role)
}

// AssertShapes fails with KindShapeMismatch unless t matches pattern.
func AssertShapes(t Described, pattern tensor.Pattern, role string) error {
	return validate.AssertShapes(t, pattern, role)
}

// AssertType fails with KindTypeMismatch unless t's element type is dtype.
func AssertType(t Described, dtype tensor.DataType, role string) error {
	return validate.AssertType(t, dtype, role)
}
