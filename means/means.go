// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package means

import (
	"github.com/linop-ml/linop/internal/means"
	"github.com/linop-ml/linop/internal/tensor"
)

// Type aliases for public API

// Mean is the base interface for all prior mean functions.
type Mean = means.Mean

// Parameter represents a learnable quantity of a mean function.
type Parameter = means.Parameter

// Constant is a mean function returning one learnable constant for every
// input point.
type Constant = means.Constant

// Zero is a fixed zero mean with no learnable parameters.
type Zero = means.Zero

// Constructors

// NewConstant creates a constant mean with no batch dimensions.
//
// Example:
//
//	m := means.NewConstant(backend)
//	m.SetConstant(2.5)
func NewConstant(backend tensor.Backend) *Constant {
	return means.NewConstant(backend)
}

// NewConstantBatch creates a constant mean with one independent constant
// per batch entry.
func NewConstantBatch(batchShape tensor.Shape, backend tensor.Backend) *Constant {
	return means.NewConstantBatch(batchShape, backend)
}

// NewZero creates a zero mean.
func NewZero() *Zero {
	return means.NewZero()
}

// NewParameter creates a named parameter around an initialized value.
func NewParameter(name string, value *tensor.Dense) *Parameter {
	return means.NewParameter(name, value)
}
