package lazy

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrEmptyQuery reports an InvQuadLogDet call that requested nothing:
	// no right-hand side and no log-determinant.
	ErrEmptyQuery = errors.New("inv quad log det: neither a right-hand side nor a log-determinant was requested")
)

// NotLowerTriangularError reports a Cholesky operator constructed from a
// factor carrying mass strictly above the main diagonal.
type NotLowerTriangularError struct {
	MaxAboveDiagonal float64 // largest magnitude found strictly above the diagonal
	Tol              float64 // tolerance the construction scan allows
}

// Error implements the error interface.
func (e *NotLowerTriangularError) Error() string {
	return fmt.Sprintf("cholesky factor must be lower triangular: max |entry| above the diagonal %.3e exceeds %.0e",
		e.MaxAboveDiagonal, e.Tol)
}
