package lazy

import (
	"fmt"
	"math"

	"github.com/linop-ml/linop/internal/settings"
	"github.com/linop-ml/linop/internal/tensor"
)

// triangularTol is the largest above-diagonal magnitude a factor may carry
// before construction rejects it as not lower triangular.
const triangularTol = 1e-3

// Cholesky is a root-decomposed operator whose root is known to be lower
// triangular: the represented matrix is l @ lᵀ for a Cholesky factor l
// produced elsewhere. Knowing the structure makes root-decomposition
// retrieval a constant-time return and lets solves and determinant queries
// skip refactorization entirely.
//
// The dense factor and its diagonal are memoized on first access. Neither
// cache is synchronized: concurrent first access is a data race. Touch the
// accessors once (or run one query) before sharing an instance across
// goroutines.
type Cholesky struct {
	*Root
	chol     *tensor.Dense // memoized dense factor
	cholDiag *tensor.Dense // memoized factor diagonal
}

// NewCholesky builds the operator from a dense lower-triangular factor of
// shape (..., n, n). A nil cfg uses settings.Default().
//
// Squareness of the trailing dimensions is always enforced. The
// triangularity of the factor is verified only when cfg enables debug
// checks: the scan fails if any entry strictly above the diagonal exceeds
// triangularTol in magnitude. A factor containing NaN anywhere is never
// rejected by the scan; the NaNs surface later in whatever query consumes
// them.
func NewCholesky(factor *tensor.Dense, b tensor.Backend, cfg *settings.Settings) (*Cholesky, error) {
	if cfg == nil {
		cfg = settings.Default()
	}
	if factor.Dim() < 2 || !factor.Shape().IsSquare() {
		return nil, fmt.Errorf("cholesky factor must be square in its trailing dimensions, got shape %v",
			factor.Shape())
	}
	if cfg.Debug() {
		if err := checkLowerTriangular(factor); err != nil {
			return nil, err
		}
	}

	c := &Cholesky{}
	c.Root = &Root{
		root:    NewDense(factor, b),
		backend: b,
		config:  cfg,
	}
	c.factorer = c
	return c, nil
}

// NewCholeskyFromOperator forces a lazily-represented factor into dense
// form and builds the operator from the result.
func NewCholeskyFromOperator(factor Operator, cfg *settings.Settings) (*Cholesky, error) {
	return NewCholesky(factor.Evaluate(), factor.Backend(), cfg)
}

// CholeskyFactor returns the stored factor. The operator already is a
// Cholesky decomposition, so retrieval is constant time and never runs a
// factorization.
func (c *Cholesky) CholeskyFactor() (*tensor.Dense, error) {
	return c.Factor(), nil
}

// Factor returns the dense lower-triangular factor, materializing the root
// exactly once per instance. The returned array is the cache itself; do
// not mutate it.
func (c *Cholesky) Factor() *tensor.Dense {
	if c.chol == nil {
		c.chol = c.root.Evaluate()
	}
	return c.chol
}

// FactorDiag returns the main diagonal of the factor. The diagonal is
// computed once; every call returns a fresh copy, so callers may mutate
// the result without corrupting the cache.
func (c *Cholesky) FactorDiag() *tensor.Dense {
	if c.cholDiag == nil {
		c.cholDiag = c.backend.Diagonal(c.Factor())
	}
	return c.cholDiag.Clone()
}

// InvQuadLogDet answers the query with approximations disabled for the
// duration of the call, whatever the surrounding settings say: with a
// Cholesky factor already in hand, the exact path is the cheap one. The
// surrounding mode is restored on every exit, including panics. Results
// are identical in meaning to the generic implementation's; only the
// algorithmic path is pinned.
func (c *Cholesky) InvQuadLogDet(rhs *tensor.Dense, logDet, reduceInvQuad bool) (*tensor.Dense, *tensor.Dense, error) {
	defer c.config.ScopedFastLogProb(false)()
	return c.Root.InvQuadLogDet(rhs, logDet, reduceInvQuad)
}

// checkLowerTriangular scans the strictly-upper triangle of every batch
// entry for mass exceeding triangularTol. The scan only rejects NaN-free
// factors: NaN anywhere in the factor disables the comparison.
func checkLowerTriangular(factor *tensor.Dense) error {
	n := factor.Rows()
	data := factor.Data()
	matSize := n * n
	batches := factor.NumElements() / matSize

	maxAbove := 0.0
	hasNaN := false
	for bi := 0; bi < batches; bi++ {
		off := bi * matSize
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := data[off+i*n+j]
				if math.IsNaN(v) {
					hasNaN = true
				}
				if j > i {
					if av := math.Abs(v); av > maxAbove {
						maxAbove = av
					}
				}
			}
		}
	}

	if maxAbove > triangularTol && !hasNaN {
		return &NotLowerTriangularError{MaxAboveDiagonal: maxAbove, Tol: triangularTol}
	}
	return nil
}
