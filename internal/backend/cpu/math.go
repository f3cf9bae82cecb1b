package cpu

import (
	"fmt"
	"math"

	"github.com/linop-ml/linop/internal/tensor"
)

// Log computes element-wise natural logarithm: ln(x).
func (cpu *CPUBackend) Log(x *tensor.Dense) *tensor.Dense {
	result, err := tensor.NewDense(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("log: %v", err))
	}

	src := x.Data()
	dst := result.Data()
	for i, v := range src {
		if v <= 0 {
			panic(fmt.Sprintf("log: non-positive value at index %d: %f", i, v))
		}
		dst[i] = math.Log(v)
	}
	return result
}

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *CPUBackend) Sqrt(x *tensor.Dense) *tensor.Dense {
	result, err := tensor.NewDense(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("sqrt: %v", err))
	}

	src := x.Data()
	dst := result.Data()
	for i, v := range src {
		if v < 0 {
			panic(fmt.Sprintf("sqrt: negative value at index %d: %f", i, v))
		}
		dst[i] = math.Sqrt(v)
	}
	return result
}

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.Dense, s float64) *tensor.Dense {
	result, err := tensor.NewDense(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("addscalar: %v", err))
	}

	src := x.Data()
	dst := result.Data()
	for i, v := range src {
		dst[i] = v + s
	}
	return result
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.Dense, s float64) *tensor.Dense {
	result, err := tensor.NewDense(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("mulscalar: %v", err))
	}

	src := x.Data()
	dst := result.Data()
	for i, v := range src {
		dst[i] = v * s
	}
	return result
}
