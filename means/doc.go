// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package means provides prior mean functions for Gaussian process models.
//
// # Overview
//
// A mean function maps a batch of input points to the prior mean of the
// process at those points:
//   - Constant: one learnable constant broadcast over every input point
//   - Zero: fixed zero prior, no parameters
//
// All means satisfy the Mean interface (Forward plus Parameters), so
// models can hold any of them behind one field.
//
// # Basic Usage
//
//	import (
//	    "github.com/linop-ml/linop/backend/cpu"
//	    "github.com/linop-ml/linop/means"
//	    "github.com/linop-ml/linop/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    mean := means.NewConstant(backend)
//	    mean.SetConstant(2.5)
//
//	    // x holds n points with d features each.
//	    x := tensor.Randn(tensor.Shape{100, 3})
//	    prior := mean.Forward(x) // shape [100], every entry 2.5
//	    _ = prior
//	}
//
// # Batched Means
//
// NewConstantBatch carries one independent constant per batch entry, for
// models evaluated over stacked input sets:
//
//	mean := means.NewConstantBatch(tensor.Shape{4}, backend)
package means
