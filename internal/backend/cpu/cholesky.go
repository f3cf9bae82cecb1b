package cpu

import (
	"fmt"
	"math"

	"github.com/linop-ml/linop/internal/parallel"
	"github.com/linop-ml/linop/internal/tensor"
)

// Cholesky computes the lower-triangular factor of each batched symmetric
// positive-definite matrix: a = l @ lᵀ. Only the lower triangle of a is
// read; the strict upper triangle of the result is zero. Batch entries are
// factorized in parallel.
func (cpu *CPUBackend) Cholesky(a *tensor.Dense) (*tensor.Dense, error) {
	_, n, m := matrixDims("cholesky", a)
	if n != m {
		panic(fmt.Sprintf("cholesky: matrix must be square, got %v", a.Shape()))
	}

	result, err := tensor.NewDense(a.Shape())
	if err != nil {
		panic(fmt.Sprintf("cholesky: failed to create result: %v", err))
	}

	batchCount := a.NumElements() / (n * n)
	aData := a.Data()
	out := result.Data()
	step := n * n

	errs := make([]error, batchCount)
	parallel.For(batchCount, func(bi int) {
		errs[bi] = choleskyOne(aData[bi*step:(bi+1)*step], out[bi*step:(bi+1)*step], n, bi)
	}, parallel.HeavyConfig())

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return result, nil
}

// choleskyOne factorizes a single n×n matrix with the unblocked
// right-looking algorithm.
func choleskyOne(a, l []float64, n, batch int) error {
	for j := 0; j < n; j++ {
		d := a[j*n+j]
		for k := 0; k < j; k++ {
			d -= l[j*n+k] * l[j*n+k]
		}
		if d <= 0 {
			return fmt.Errorf("cholesky: batch %d: leading minor of order %d: %w",
				batch, j+1, tensor.ErrNotPositiveDefinite)
		}
		l[j*n+j] = math.Sqrt(d)

		for i := j + 1; i < n; i++ {
			s := a[i*n+j]
			for k := 0; k < j; k++ {
				s -= l[i*n+k] * l[j*n+k]
			}
			l[i*n+j] = s / l[j*n+j]
		}
	}
	return nil
}
