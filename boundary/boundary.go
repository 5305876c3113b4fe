// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package boundary prepares edge targets for boundary-aware segmentation.
//
// A flat (h, w) label grid is turned into an (h, w, 1) binary map marking
// every pixel within a radius of a class boundary:
//
//	label, _ := tensor.FromRows([][]int32{
//	    {0, 0, 1, 1},
//	    {0, 0, 1, 1},
//	})
//	edges, err := boundary.FlatLabelToEdgeLabel(label, 2, boundary.DefaultEdgeConfig())
//
// The package is silent by default; call SetLogger to see per-call
// diagnostics.
package boundary

import (
	"github.com/rs/zerolog"

	"github.com/born-ml/gscnn/internal/boundary"
	"github.com/born-ml/gscnn/internal/distance"
	"github.com/born-ml/gscnn/tensor"
)

// EdgeConfig controls edge-map generation.
type EdgeConfig = boundary.EdgeConfig

// Transformer computes a Euclidean distance transform: the distance from
// each element of a 2-D grid to its nearest zero element.
type Transformer = distance.Transformer

// EDT is the exact Euclidean distance transform used by default.
type EDT = distance.EDT

// Default edge-map parameters.
const (
	DefaultRadius          = boundary.DefaultRadius
	DefaultBackgroundClass = boundary.DefaultBackgroundClass
)

// DefaultEdgeConfig returns radius 2, background class 0 and the exact EDT.
func DefaultEdgeConfig() EdgeConfig {
	return boundary.DefaultEdgeConfig()
}

// FlatLabelToEdgeLabel converts an (h, w) label grid with values in
// [0, nClasses) into an (h, w, 1) uint8 edge map.
func FlatLabelToEdgeLabel[T tensor.Label](label *tensor.Tensor[T], nClasses int, cfg EdgeConfig) (*tensor.Tensor[uint8], error) {
	return boundary.FlatLabelToEdgeLabel(label, nClasses, cfg)
}

// LabelToOneHot converts an (h, w) label grid into an (h, w, nClasses)
// uint8 mask stack whose background slice is all zero.
func LabelToOneHot[T tensor.Label](label *tensor.Tensor[T], nClasses, backgroundClass int) (*tensor.Tensor[uint8], error) {
	return boundary.LabelToOneHot(label, nClasses, backgroundClass)
}

// SetLogger configures the package logger. Pass nil to silence it.
func SetLogger(l *zerolog.Logger) {
	boundary.SetLogger(l)
}
