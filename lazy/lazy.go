// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package lazy

import (
	"github.com/linop-ml/linop/internal/lazy"
	"github.com/linop-ml/linop/internal/settings"
	"github.com/linop-ml/linop/internal/tensor"
)

// Type aliases for public API

// Operator represents a batched matrix without committing to a dense
// layout.
type Operator = lazy.Operator

// CholeskyFactorer yields a lower-triangular factor of the represented
// matrix. Derived operators override it to change how solves and
// determinants are produced.
type CholeskyFactorer = lazy.CholeskyFactorer

// DenseOperator wraps an already-materialized dense matrix in the
// Operator interface.
type DenseOperator = lazy.DenseOperator

// Root represents the symmetric positive-semidefinite product r @ rᵀ of a
// root factor r.
type Root = lazy.Root

// Cholesky is a root-decomposed operator whose root is known to be lower
// triangular, making factorization queries constant time.
type Cholesky = lazy.Cholesky

// NotLowerTriangularError reports a Cholesky operator constructed from a
// factor carrying mass strictly above the main diagonal.
type NotLowerTriangularError = lazy.NotLowerTriangularError

// ErrEmptyQuery reports an InvQuadLogDet call that requested nothing.
var ErrEmptyQuery = lazy.ErrEmptyQuery

// Constructors

// NewDense wraps a dense matrix in an operator.
//
// Example:
//
//	op := lazy.NewDense(covariance, backend)
func NewDense(value *tensor.Dense, b tensor.Backend) *DenseOperator {
	return lazy.NewDense(value, b)
}

// NewRoot builds the operator r @ rᵀ from a dense root factor. A nil cfg
// uses settings.Default().
//
// Example:
//
//	op := lazy.NewRoot(root, backend, nil)
func NewRoot(root *tensor.Dense, b tensor.Backend, cfg *settings.Settings) *Root {
	return lazy.NewRoot(root, b, cfg)
}

// NewRootFromOperator builds r @ rᵀ from a root that is itself an
// operator. A nil cfg uses settings.Default().
func NewRootFromOperator(root Operator, cfg *settings.Settings) *Root {
	return lazy.NewRootFromOperator(root, cfg)
}

// NewCholesky builds an operator from a dense lower-triangular Cholesky
// factor. A nil cfg uses settings.Default(); with debug checks enabled the
// factor's triangularity is validated at construction.
//
// Example:
//
//	l, _ := backend.Cholesky(covariance)
//	op, err := lazy.NewCholesky(l, backend, nil)
func NewCholesky(factor *tensor.Dense, b tensor.Backend, cfg *settings.Settings) (*Cholesky, error) {
	return lazy.NewCholesky(factor, b, cfg)
}

// NewCholeskyFromOperator forces a lazily-represented factor into dense
// form and builds the operator from the result.
func NewCholeskyFromOperator(factor Operator, cfg *settings.Settings) (*Cholesky, error) {
	return lazy.NewCholeskyFromOperator(factor, cfg)
}
