package lazy

import (
	"fmt"

	"github.com/linop-ml/linop/internal/settings"
	"github.com/linop-ml/linop/internal/tensor"
)

// Root represents the symmetric positive-semidefinite product r @ rᵀ for a
// root factor r of shape (..., n, k). The product is never formed unless
// Evaluate is called; multiplies, diagonals, solves, and quadratic-form
// queries all work through the factor.
type Root struct {
	root     Operator
	backend  tensor.Backend
	config   *settings.Settings
	factorer CholeskyFactorer
}

// NewRoot builds the operator r @ rᵀ from a dense root factor.
// A nil cfg uses settings.Default().
func NewRoot(root *tensor.Dense, b tensor.Backend, cfg *settings.Settings) *Root {
	return NewRootFromOperator(NewDense(root, b), cfg)
}

// NewRootFromOperator builds r @ rᵀ from a root that is itself an operator.
// A nil cfg uses settings.Default().
func NewRootFromOperator(root Operator, cfg *settings.Settings) *Root {
	if cfg == nil {
		cfg = settings.Default()
	}
	r := &Root{
		root:    root,
		backend: root.Backend(),
		config:  cfg,
	}
	r.factorer = r
	return r
}

// Shape returns the represented shape: (..., n, n) for a root (..., n, k).
func (r *Root) Shape() tensor.Shape {
	s := r.root.Shape().Clone()
	s[len(s)-1] = s[len(s)-2]
	return s
}

// Root returns the root factor operator.
func (r *Root) Root() Operator {
	return r.root
}

// Settings returns the configuration the operator consults.
func (r *Root) Settings() *settings.Settings {
	return r.config
}

// Backend returns the compute backend.
func (r *Root) Backend() tensor.Backend {
	return r.backend
}

// MatMul computes (r @ rᵀ) @ rhs as two factor products, never forming the
// represented matrix.
func (r *Root) MatMul(rhs *tensor.Dense) *tensor.Dense {
	return r.root.MatMul(r.root.TMatMul(rhs))
}

// TMatMul equals MatMul: the represented matrix is symmetric.
func (r *Root) TMatMul(rhs *tensor.Dense) *tensor.Dense {
	return r.MatMul(rhs)
}

// Evaluate forms the dense product r @ rᵀ. Root recomputes on every call;
// derived operators cache where their contract allows.
func (r *Root) Evaluate() *tensor.Dense {
	root := r.root.Evaluate()
	return r.backend.MatMul(root, r.backend.Transpose(root))
}

// Diagonal computes the diagonal of r @ rᵀ as row-wise sums of squares of
// the root, without forming the product.
func (r *Root) Diagonal() *tensor.Dense {
	root := r.root.Evaluate()
	return r.backend.SumDim(r.backend.Mul(root, root), -1, false)
}

// CholeskyFactor materializes the represented matrix and factorizes it
// densely. Derived operators that already hold a triangular root replace
// this with a constant-time return.
func (r *Root) CholeskyFactor() (*tensor.Dense, error) {
	return r.backend.Cholesky(r.Evaluate())
}

// Solve returns x with (r @ rᵀ) @ x = rhs, going through the operator's
// Cholesky factor and two triangular solves.
func (r *Root) Solve(rhs *tensor.Dense) (*tensor.Dense, error) {
	if err := r.checkRHS(rhs); err != nil {
		return nil, err
	}
	l, err := r.factorer.CholeskyFactor()
	if err != nil {
		return nil, err
	}
	y := r.backend.SolveTriangular(l, rhs, false, false)
	return r.backend.SolveTriangular(l, y, false, true), nil
}

// checkRHS validates a right-hand side against the operator shape.
func (r *Root) checkRHS(rhs *tensor.Dense) error {
	if rhs.Dim() < 2 {
		return fmt.Errorf("right-hand side must be a column matrix, got shape %v", rhs.Shape())
	}
	shape := r.Shape()
	if rhs.Rows() != shape.Rows() {
		return fmt.Errorf("right-hand side rows %d do not match operator size %d", rhs.Rows(), shape.Rows())
	}
	if _, _, err := tensor.BroadcastShapes(shape.Batch(), rhs.Shape().Batch()); err != nil {
		return fmt.Errorf("right-hand side batch dimensions: %w", err)
	}
	return nil
}
