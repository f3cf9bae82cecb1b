// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/linop-ml/linop/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a dense array.
// Example: Shape{2, 3, 4} is a batch of two 3×4 matrices.
type Shape = tensor.Shape

// Dense is a batched dense array of float64 values in row-major layout.
type Dense = tensor.Dense

// Backend is the interface device-specific compute implementations satisfy.
type Backend = tensor.Backend

// Device represents the device where a backend computes.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// ErrNotPositiveDefinite reports a factorization or determinant query on a
// matrix that is not positive definite.
var ErrNotPositiveDefinite = tensor.ErrNotPositiveDefinite

// Creation functions

// NewDense creates a zero-filled array with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	return tensor.NewDense(shape)
}

// Zeros creates an array filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) *Dense {
	return tensor.Eye(n)
}

// BatchEye creates a stack of n×n identity matrices, one per entry of the
// leading batch dimensions.
//
// Example:
//
//	t := tensor.BatchEye(tensor.Shape{4}, 3) // four stacked 3x3 identities
func BatchEye(batch Shape, n int) *Dense {
	return tensor.BatchEye(batch, n)
}

// FromSlice creates an array from a Go slice. The data is copied.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// Randn creates an array with random values from a normal distribution
// (mean=0, std=1).
//
// Example:
//
//	t := tensor.Randn(tensor.Shape{100, 100})
func Randn(shape Shape) *Dense {
	return tensor.Randn(shape)
}

// RandnLower creates a random n×n lower-triangular matrix with strictly
// positive diagonal entries, suitable as a well-conditioned Cholesky
// factor.
//
// Example:
//
//	l := tensor.RandnLower(50)
func RandnLower(n int) *Dense {
	return tensor.RandnLower(n)
}

// BroadcastShapes implements NumPy-style broadcasting rules. It returns
// the broadcasted shape, a flag indicating whether broadcasting is needed,
// and an error if the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
