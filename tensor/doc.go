// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensors consumed by the boundary
// preprocessing and validation packages.
//
// # Overview
//
// This package provides:
//   - Generic typed tensors (Tensor[T])
//   - Untyped tensors for inspection (RawTensor)
//   - Shapes, and patterns with symbolic dimensions (Pattern, Any)
//
// # Basic Usage
//
//	import "github.com/born-ml/gscnn/tensor"
//
//	func main() {
//	    label, err := tensor.FromRows([][]int32{
//	        {0, 0, 1},
//	        {0, 1, 1},
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(label.Shape()) // [2 3]
//	}
//
// # Data Types
//
// Supported types:
//   - float32, float64
//   - int32, int64
//   - uint8
//   - bool
//
// Class labels may be int32, int64 or uint8.
package tensor
