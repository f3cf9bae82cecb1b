package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates an array filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Dense {
	d, err := NewDense(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return d
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Dense {
	d := Zeros(shape)
	data := d.Data()
	for i := range data {
		data[i] = value
	}
	return d
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) *Dense {
	d := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		d.Set(1, i, i)
	}
	return d
}

// BatchEye creates a stack of n×n identity matrices, one per entry of the
// leading batch dimensions. An empty batch shape gives a plain 2D identity.
//
// Example:
//
//	t := tensor.BatchEye(tensor.Shape{4}, 3) // four stacked 3x3 identities
func BatchEye(batch Shape, n int) *Dense {
	d := Zeros(append(batch.Clone(), n, n))
	data := d.Data()
	step := n * n
	for b := 0; b < batch.NumElements(); b++ {
		for i := 0; i < n; i++ {
			data[b*step+i*n+i] = 1
		}
	}
	return d
}

// FromSlice creates an array from a Go slice. The data is copied.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	d, err := NewDense(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != d.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, d.NumElements())
	}
	copy(d.Data(), data)
	return d, nil
}

// Randn creates an array with random values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// Note: Uses math/rand (not crypto/rand) - appropriate for statistical purposes.
//
// Example:
//
//	t := tensor.Randn(tensor.Shape{100, 100})
func Randn(shape Shape) *Dense {
	d := Zeros(shape)
	data := d.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: math/rand intentionally, for reproducibility
		u2 := rand.Float64() //nolint:gosec // G404: math/rand intentionally, for reproducibility
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = z0
		if i+1 < len(data) {
			data[i+1] = z1
		}
	}
	return d
}

// RandnLower creates a random n×n lower-triangular matrix with strictly
// positive diagonal entries, suitable as a well-conditioned Cholesky
// factor. Off-diagonal entries below the diagonal are standard normal;
// diagonal entries are |N(0,1)| + 1.
//
// Example:
//
//	l := tensor.RandnLower(50)
func RandnLower(n int) *Dense {
	d := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			d.Set(rand.NormFloat64(), i, j) //nolint:gosec // G404: math/rand intentionally
		}
		d.Set(math.Abs(rand.NormFloat64())+1, i, i) //nolint:gosec // G404: math/rand intentionally
	}
	return d
}
