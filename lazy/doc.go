// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package lazy provides lazily-evaluated linear operators for symmetric
// positive-definite matrices.
//
// # Overview
//
// A lazy operator keeps whatever structure it was built from and answers
// products, solves, and determinant queries from that structure instead of
// a materialized matrix:
//   - Root: the product r @ rᵀ of an arbitrary root factor
//   - Cholesky: a root known to be lower triangular, so factorization
//     queries are constant time
//   - DenseOperator: a plain dense matrix behind the Operator interface
//
// # Basic Usage
//
//	import (
//	    "github.com/linop-ml/linop/backend/cpu"
//	    "github.com/linop-ml/linop/lazy"
//	    "github.com/linop-ml/linop/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    l, _ := backend.Cholesky(covariance)
//	    op, _ := lazy.NewCholesky(l, backend, nil)
//
//	    // One pass answers both Gaussian log-likelihood terms.
//	    invQuad, logDet, _ := op.InvQuadLogDet(y, true, true)
//	    _, _ = invQuad, logDet
//	}
//
// # Numerical Modes
//
// Operators consult a settings.Settings value handed to them at
// construction. Debug mode adds structural validation at construction
// time; fast log-probability mode answers quadratic-form and determinant
// queries from the operator diagonal alone. A Cholesky operator pins its
// own queries to the exact path regardless of the surrounding mode,
// restoring it on every exit.
package lazy
