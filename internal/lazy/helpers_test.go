package lazy

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

// stack2 joins two equally-shaped arrays into a batch of two.
func stack2(a, b *tensor.Dense) *tensor.Dense {
	shape := append(tensor.Shape{2}, a.Shape().Clone()...)
	out := tensor.Zeros(shape)
	step := a.NumElements()
	copy(out.Data()[:step], a.Data())
	copy(out.Data()[step:], b.Data())
	return out
}

// product forms l @ lᵀ as a gonum matrix, the oracle for what a
// root-decomposed operator represents.
func product(l *tensor.Dense) *mat.Dense {
	lg := toGonum(l)
	var a mat.Dense
	a.Mul(lg, lg.T())
	return &a
}

// invQuadOracle computes vᵀ a⁻¹ v for every column v of rhs with a dense
// solve, independent of the code under test.
func invQuadOracle(a mat.Matrix, rhs *tensor.Dense) []float64 {
	var x mat.Dense
	if err := x.Solve(a, toGonum(rhs)); err != nil {
		panic(err)
	}
	rg := toGonum(rhs)
	out := make([]float64, rhs.Cols())
	for j := range out {
		out[j] = mat.Dot(rg.ColView(j), x.ColView(j))
	}
	return out
}

// countingBackend counts factorization calls passing through it.
type countingBackend struct {
	tensor.Backend
	choleskyCalls int
}

func (c *countingBackend) Cholesky(a *tensor.Dense) (*tensor.Dense, error) {
	c.choleskyCalls++
	return c.Backend.Cholesky(a)
}

// countingOperator counts how often its wrapped operator materializes.
type countingOperator struct {
	Operator
	evaluations int
}

func (c *countingOperator) Evaluate() *tensor.Dense {
	c.evaluations++
	return c.Operator.Evaluate()
}

// faultyBackend fails every triangular solve with a panic.
type faultyBackend struct {
	tensor.Backend
}

func (f *faultyBackend) SolveTriangular(l, rhs *tensor.Dense, upper, transpose bool) *tensor.Dense {
	panic("triangular solve exploded")
}
