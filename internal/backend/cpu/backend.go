// Package cpu implements the CPU backend with chunked goroutine parallelism.
package cpu

import (
	"fmt"

	"github.com/linop-ml/linop/internal/parallel"
	"github.com/linop-ml/linop/internal/tensor"
)

// CPUBackend implements dense matrix operations on CPU in pure Go.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.Dense) *tensor.Dense {
	return cpu.elementWise("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with NumPy-style broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.Dense) *tensor.Dense {
	return cpu.elementWise("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.Dense) *tensor.Dense {
	return cpu.elementWise("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with NumPy-style broadcasting.
// Division by zero follows IEEE semantics.
func (cpu *CPUBackend) Div(a, b *tensor.Dense) *tensor.Dense {
	return cpu.elementWise("div", a, b, func(x, y float64) float64 { return x / y })
}

func (cpu *CPUBackend) elementWise(op string, a, b *tensor.Dense, f func(x, y float64) float64) *tensor.Dense {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewDense(outShape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result: %v", op, err))
	}

	aData := a.Data()
	bData := b.Data()
	out := result.Data()

	if !needsBroadcast {
		// Fast path: same shape, aligned flat iteration.
		for i := range out {
			out[i] = f(aData[i], bData[i])
		}
		return result
	}

	aShape := a.Shape()
	bShape := b.Shape()
	for i := range out {
		out[i] = f(aData[broadcastIndex(i, outShape, aShape)], bData[broadcastIndex(i, outShape, bShape)])
	}
	return result
}
