// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense matrix values for the LinOp framework.
//
// # Overview
//
// Dense arrays are the fundamental data structure in LinOp. This package
// provides:
//   - Batched dense float64 arrays (Dense)
//   - NumPy-style broadcasting
//   - The Backend interface for device-specific compute implementations
//   - Shape and Device type definitions
//
// # Basic Usage
//
//	import (
//	    "github.com/linop-ml/linop/tensor"
//	    "github.com/linop-ml/linop/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create arrays
//	    x := tensor.Eye(3)
//	    y := tensor.Full(tensor.Shape{3, 3}, 2.0)
//
//	    // Dispatch operations through a backend
//	    z := backend.MatMul(x, y)
//	    _ = z
//	}
//
// # Batched Matrices
//
// The trailing two dimensions of a shape are the matrix rows and columns;
// any leading dimensions are batch dimensions. Backend operations apply to
// every batch entry, broadcasting batch dimensions NumPy-style:
//
//	a := tensor.Randn(tensor.Shape{4, 3, 3}) // batch of four 3×3 matrices
//	b := tensor.Randn(tensor.Shape{3, 5})    // broadcast across the batch
//	c := backend.MatMul(a, b)                // (4, 3, 5)
//
// # Device Support
//
// Data always lives in host memory; the compute device is a property of
// the Backend:
//   - CPU: Pure Go implementation (v0.1.0+)
//   - WebGPU: Reserved for a future release
package tensor
