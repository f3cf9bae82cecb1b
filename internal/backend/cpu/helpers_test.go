package cpu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/linop-ml/linop/internal/tensor"
)

// toGonum converts an unbatched matrix to a gonum dense matrix.
func toGonum(d *tensor.Dense) *mat.Dense {
	return mat.NewDense(d.Rows(), d.Cols(), append([]float64(nil), d.Data()...))
}

// batchSlice extracts batch entry bi of a batched matrix as a gonum matrix.
func batchSlice(d *tensor.Dense, bi int) *mat.Dense {
	n, m := d.Rows(), d.Cols()
	step := n * m
	return mat.NewDense(n, m, append([]float64(nil), d.Data()[bi*step:(bi+1)*step]...))
}

// randSPD returns a random symmetric positive-definite matrix built as
// l @ lᵀ from a well-conditioned lower factor.
func randSPD(n int) *tensor.Dense {
	l := tensor.RandnLower(n)
	a := tensor.Zeros(tensor.Shape{n, n})
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += l.At(i, k) * l.At(j, k)
			}
			a.Set(sum, i, j)
		}
	}
	return a
}
