package tensor

import "errors"

// Common errors.
var (
	// ErrNotPositiveDefinite reports that a matrix required to be symmetric
	// positive definite failed a factorization or determinant computation.
	ErrNotPositiveDefinite = errors.New("matrix is not positive definite")
)
