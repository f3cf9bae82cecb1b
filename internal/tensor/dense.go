// Package tensor provides the dense matrix substrate for the LinOp framework.
package tensor

import (
	"fmt"
	"strings"
)

// Device represents the compute device a backend runs on.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Dense is a batched dense array of float64 values in row-major layout.
// The trailing two dimensions of the shape are the matrix rows and columns;
// leading dimensions, if any, are batch dimensions. Storage is always host
// memory; the compute device is a property of the Backend, not the data.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// NewDense creates a zero-filled array with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns the array's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Dim returns the number of dimensions.
func (d *Dense) Dim() int {
	return len(d.shape)
}

// Rows returns the second-to-last dimension.
func (d *Dense) Rows() int {
	return d.shape.Rows()
}

// Cols returns the last dimension.
func (d *Dense) Cols() int {
	return d.shape.Cols()
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// Strides returns the array's memory strides.
func (d *Dense) Strides() []int {
	return d.stride
}

// Data returns the flat row-major value slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at the given full index.
// Panics on wrong arity or out-of-bounds indices.
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.flatIndex(indices)]
}

// Set stores value at the given full index.
// Panics on wrong arity or out-of-bounds indices.
func (d *Dense) Set(value float64, indices ...int) {
	d.data[d.flatIndex(indices)] = value
}

func (d *Dense) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices for shape %v, got %d", len(d.shape), d.shape, len(indices)))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of range for dimension %d (size %d)", idx, i, d.shape[i]))
		}
		flat += idx * d.stride[i]
	}
	return flat
}

// Item returns the sole element of a scalar-shaped array.
// Panics if the array holds more than one element.
func (d *Dense) Item() float64 {
	if d.NumElements() != 1 {
		panic(fmt.Sprintf("item requires a single-element array, got shape %v", d.shape))
	}
	return d.data[0]
}

// Clone returns a deep copy with its own storage.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return &Dense{
		data:   data,
		shape:  d.shape.Clone(),
		stride: append([]int(nil), d.stride...),
	}
}

// Reshape returns a view of the same data with a new shape.
// The element count must match. The returned array aliases the receiver's
// storage; writes through either are visible in both.
func (d *Dense) Reshape(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if shape.NumElements() != d.NumElements() {
		panic(fmt.Sprintf("reshape: cannot view shape %v as %v (different number of elements)", d.shape, shape))
	}
	return &Dense{
		data:   d.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// Equal reports whether two arrays have the same shape and identical
// values. Comparison uses ==, so arrays containing NaN are never equal.
func (d *Dense) Equal(other *Dense) bool {
	if !d.shape.Equal(other.shape) {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a compact description, printing values for small arrays.
func (d *Dense) String() string {
	if d.NumElements() <= 16 {
		vals := make([]string, len(d.data))
		for i, v := range d.data {
			vals[i] = fmt.Sprintf("%g", v)
		}
		return fmt.Sprintf("Dense%v[%s]", d.shape, strings.Join(vals, " "))
	}
	return fmt.Sprintf("Dense%v[%d values]", d.shape, d.NumElements())
}
