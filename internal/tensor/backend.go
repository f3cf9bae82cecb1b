package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for dense matrix operations.
//
// All operations treat the trailing two dimensions of their operands as
// matrix dimensions and any leading dimensions as batch dimensions.
// Operations panic on shape misuse; numerical failures with a defined
// meaning (a matrix that is not positive definite) are returned as errors.
//
// Implementations:
//   - CPU: Pure Go kernels with chunked goroutine parallelism
//   - WebGPU: Reserved for a future release
type Backend interface {
	// MatMul multiplies batched matrices: (..., n, k) @ (..., k, m) -> (..., n, m).
	// Leading batch dimensions broadcast NumPy-style.
	MatMul(a, b *Dense) *Dense

	// Transpose swaps the trailing two dimensions.
	Transpose(a *Dense) *Dense

	// Diagonal extracts the main diagonal of the trailing two dimensions:
	// (..., n, m) -> (..., min(n, m)).
	Diagonal(a *Dense) *Dense

	// Element-wise operations (NumPy-style broadcasting)
	Add(a, b *Dense) *Dense
	Sub(a, b *Dense) *Dense
	Mul(a, b *Dense) *Dense
	Div(a, b *Dense) *Dense

	// Math operations (element-wise)
	Log(x *Dense) *Dense  // natural logarithm; panics on non-positive input
	Sqrt(x *Dense) *Dense // square root; panics on negative input

	// Scalar operations (element-wise with scalar)
	AddScalar(x *Dense, s float64) *Dense
	MulScalar(x *Dense, s float64) *Dense

	// Reduction operations
	SumDim(x *Dense, dim int, keepDim bool) *Dense // sum along dimension (negative dims allowed)

	// Shape operations (broadcast)
	Expand(x *Dense, shape Shape) *Dense // broadcast to shape

	// SolveTriangular solves l @ x = rhs column-by-column, where l is
	// triangular: lower when upper is false, upper otherwise. With
	// transpose set, lᵀ @ x = rhs is solved instead without materializing
	// the transpose. Zero pivots follow IEEE semantics (Inf/NaN propagate
	// into the result rather than failing).
	SolveTriangular(l, rhs *Dense, upper, transpose bool) *Dense

	// Cholesky computes the lower-triangular factor of each batched
	// symmetric positive-definite matrix: a = l @ lᵀ. Only the lower
	// triangle of a is read. Fails with an error wrapping
	// ErrNotPositiveDefinite if any leading minor is not positive.
	Cholesky(a *Dense) (*Dense, error)

	// Metadata
	Name() string
	Device() Device
}
