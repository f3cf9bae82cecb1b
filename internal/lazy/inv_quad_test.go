package lazy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/linop-ml/linop/internal/backend/cpu"
	"github.com/linop-ml/linop/internal/settings"
	"github.com/linop-ml/linop/internal/tensor"
)

func TestInvQuadLogDet_MatchesDenseSolve(t *testing.T) {
	backend := cpu.New()
	l := tensor.RandnLower(8)
	op, err := NewCholesky(l, backend, nil)
	require.NoError(t, err)

	rhs := tensor.Randn(tensor.Shape{8, 3})
	iq, ld, err := op.InvQuadLogDet(rhs, true, true)
	require.NoError(t, err)

	a := product(l)
	wantIq := 0.0
	for _, v := range invQuadOracle(a, rhs) {
		wantIq += v
	}
	assert.InDelta(t, wantIq, iq.Item(), 1e-8)

	wantLd, sign := mat.LogDet(a)
	require.Equal(t, 1.0, sign)
	assert.InDelta(t, wantLd, ld.Item(), 1e-8)
}

func TestCholesky_InvQuadLogDetPinsExactMode(t *testing.T) {
	backend := cpu.New()
	cfg := settings.Default()
	cfg.SetFastLogProb(true)

	// A clearly non-diagonal product, where the diagonal surrogate is wrong.
	l, err := tensor.FromSlice([]float64{1, 0, 1, 1}, tensor.Shape{2, 2})
	require.NoError(t, err)
	op, err := NewCholesky(l, backend, cfg)
	require.NoError(t, err)

	rhs, err := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2, 1})
	require.NoError(t, err)

	iq, ld, err := op.InvQuadLogDet(rhs, true, true)
	require.NoError(t, err)

	// a = [[1,1],[1,2]]: vᵀ a⁻¹ v = 1 and log det a = 0, while the
	// surrogate would report 1.5 and log 2.
	assert.InDelta(t, 1.0, iq.Item(), 1e-12)
	assert.InDelta(t, 0.0, ld.Item(), 1e-12)

	assert.True(t, cfg.FastLogProb(), "surrounding mode must be restored")
}

func TestInvQuadLogDet_FastPath(t *testing.T) {
	backend := cpu.New()
	cfg := settings.Default()
	cfg.SetFastLogProb(true)

	l, err := tensor.FromSlice([]float64{1, 0, 1, 1}, tensor.Shape{2, 2})
	require.NoError(t, err)
	r := NewRoot(l, backend, cfg)

	rhs, err := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2, 1})
	require.NoError(t, err)

	iq, ld, err := r.InvQuadLogDet(rhs, true, true)
	require.NoError(t, err)

	// The surrogate treats a = [[1,1],[1,2]] as diag(1, 2).
	assert.InDelta(t, 1.5, iq.Item(), 1e-12)
	assert.InDelta(t, math.Log(2), ld.Item(), 1e-12)
}

func TestInvQuadLogDet_FastPathExactForDiagonal(t *testing.T) {
	backend := cpu.New()
	l, err := tensor.FromSlice([]float64{
		1.5, 0, 0,
		0, 2, 0,
		0, 0, 0.5,
	}, tensor.Shape{3, 3})
	require.NoError(t, err)
	rhs, err := tensor.FromSlice([]float64{1, -2, 3}, tensor.Shape{3, 1})
	require.NoError(t, err)

	fast := settings.Default()
	fast.SetFastLogProb(true)
	iqFast, ldFast, err := NewRoot(l, backend, fast).InvQuadLogDet(rhs, true, true)
	require.NoError(t, err)

	iqExact, ldExact, err := NewRoot(l, backend, nil).InvQuadLogDet(rhs, true, true)
	require.NoError(t, err)

	assert.InDelta(t, iqExact.Item(), iqFast.Item(), 1e-10)
	assert.InDelta(t, ldExact.Item(), ldFast.Item(), 1e-10)
}

func TestInvQuadLogDet_PerColumn(t *testing.T) {
	backend := cpu.New()
	l, err := tensor.FromSlice([]float64{1, 0, 1, 1}, tensor.Shape{2, 2})
	require.NoError(t, err)
	op, err := NewCholesky(l, backend, nil)
	require.NoError(t, err)

	// Columns [1, 1] and [2, 0].
	rhs, err := tensor.FromSlice([]float64{
		1, 2,
		1, 0,
	}, tensor.Shape{2, 2})
	require.NoError(t, err)

	iq, ld, err := op.InvQuadLogDet(rhs, false, false)
	require.NoError(t, err)
	assert.Nil(t, ld)

	require.True(t, iq.Shape().Equal(tensor.Shape{2}))
	assert.InDelta(t, 1.0, iq.At(0), 1e-12)
	assert.InDelta(t, 8.0, iq.At(1), 1e-12)
}

func TestInvQuadLogDet_LogDetOnly(t *testing.T) {
	backend := cpu.New()
	l := tensor.RandnLower(5)
	op, err := NewCholesky(l, backend, nil)
	require.NoError(t, err)

	iq, ld, err := op.InvQuadLogDet(nil, true, false)
	require.NoError(t, err)
	assert.Nil(t, iq)

	want := 0.0
	for i := 0; i < 5; i++ {
		want += 2 * math.Log(l.At(i, i))
	}
	assert.InDelta(t, want, ld.Item(), 1e-10)
}

func TestInvQuadLogDet_InvQuadOnly(t *testing.T) {
	backend := cpu.New()
	op, err := NewCholesky(tensor.RandnLower(4), backend, nil)
	require.NoError(t, err)

	iq, ld, err := op.InvQuadLogDet(tensor.Randn(tensor.Shape{4, 1}), false, true)
	require.NoError(t, err)
	assert.Nil(t, ld)
	require.NotNil(t, iq)
	assert.Greater(t, iq.Item(), 0.0, "a positive-definite quadratic form is positive")
}

func TestInvQuadLogDet_EmptyQuery(t *testing.T) {
	backend := cpu.New()
	op, err := NewCholesky(tensor.RandnLower(3), backend, nil)
	require.NoError(t, err)

	_, _, err = op.InvQuadLogDet(nil, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestInvQuadLogDet_ValidatesRHS(t *testing.T) {
	backend := cpu.New()
	op, err := NewCholesky(tensor.RandnLower(4), backend, nil)
	require.NoError(t, err)

	vec, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4})
	require.NoError(t, err)
	_, _, err = op.InvQuadLogDet(vec, false, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column matrix")
}

func TestCholesky_ModeRestoredOnError(t *testing.T) {
	backend := cpu.New()
	cfg := settings.Default()
	cfg.SetFastLogProb(true)

	// Zero on the factor diagonal: triangular by structure, but the
	// log-determinant is undefined.
	l, err := tensor.FromSlice([]float64{1, 0, 0.5, 0}, tensor.Shape{2, 2})
	require.NoError(t, err)
	op, err := NewCholesky(l, backend, cfg)
	require.NoError(t, err)

	_, _, err = op.InvQuadLogDet(nil, true, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrNotPositiveDefinite)
	assert.True(t, cfg.FastLogProb(), "surrounding mode must be restored on failure")
}

func TestCholesky_ModeRestoredOnPanic(t *testing.T) {
	cfg := settings.Default()
	cfg.SetFastLogProb(true)

	op, err := NewCholesky(tensor.RandnLower(3), &faultyBackend{Backend: cpu.New()}, cfg)
	require.NoError(t, err)

	rhs := tensor.Randn(tensor.Shape{3, 1})
	assert.Panics(t, func() { op.InvQuadLogDet(rhs, false, true) })
	assert.True(t, cfg.FastLogProb(), "surrounding mode must be restored on panic")
}

func TestInvQuadLogDet_Batched(t *testing.T) {
	backend := cpu.New()
	l0, l1 := tensor.RandnLower(4), tensor.RandnLower(4)
	op, err := NewCholesky(stack2(l0, l1), backend, nil)
	require.NoError(t, err)

	rhs := tensor.Randn(tensor.Shape{2, 4, 2})
	iq, ld, err := op.InvQuadLogDet(rhs, true, true)
	require.NoError(t, err)
	require.True(t, iq.Shape().Equal(tensor.Shape{2}))
	require.True(t, ld.Shape().Equal(tensor.Shape{2}))

	step := 4 * 2
	for bi, l := range []*tensor.Dense{l0, l1} {
		a := product(l)
		sub, err := tensor.FromSlice(append([]float64(nil), rhs.Data()[bi*step:(bi+1)*step]...), tensor.Shape{4, 2})
		require.NoError(t, err)

		want := 0.0
		for _, v := range invQuadOracle(a, sub) {
			want += v
		}
		assert.InDelta(t, want, iq.At(bi), 1e-8, "batch %d", bi)

		wantLd, sign := mat.LogDet(a)
		require.Equal(t, 1.0, sign)
		assert.InDelta(t, wantLd, ld.At(bi), 1e-8, "batch %d", bi)
	}
}
