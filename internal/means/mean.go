// Package means implements prior mean functions for Gaussian process
// models.
//
// A mean function maps a set of input points to the prior mean of the
// process at those points:
//   - Constant: one learnable constant shared by every point
//   - Zero: fixed zero mean
//
// Design inspired by GPyTorch's mean modules but adapted for dense Go
// arrays without gradient machinery.
package means

import (
	"github.com/linop-ml/linop/internal/tensor"
)

// Mean is the base interface for all prior mean functions.
//
// Every mean function must implement:
//   - Forward: Compute mean values from input points
//   - Parameters: Return all learnable parameters
//
// Forward maps input points of shape (..., n, d) to mean values of
// shape (..., n). Parameters returns an empty result for fixed means.
type Mean interface {
	Forward(input *tensor.Dense) *tensor.Dense
	Parameters() []*Parameter
}
