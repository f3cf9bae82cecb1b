package means

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// Constant is a mean function returning one learnable constant for every
// input point.
//
// The constant starts at zero. For a batch shape (b₁, ..., bₖ) the
// underlying parameter has shape (b₁, ..., bₖ, 1), one independent
// constant per batch entry, broadcast across that entry's points.
//
// Example:
//
//	m := means.NewConstant(backend)
//	m.SetConstant(2.5)
//	mean := m.Forward(x) // shape: x's shape without the feature dimension
type Constant struct {
	batchShape tensor.Shape
	constant   *Parameter
	backend    tensor.Backend
}

// NewConstant creates a constant mean with no batch dimensions.
func NewConstant(backend tensor.Backend) *Constant {
	return NewConstantBatch(nil, backend)
}

// NewConstantBatch creates a constant mean with one independent constant
// per batch entry.
func NewConstantBatch(batchShape tensor.Shape, backend tensor.Backend) *Constant {
	return &Constant{
		batchShape: batchShape.Clone(),
		constant:   NewParameter("constant", tensor.Zeros(append(batchShape.Clone(), 1))),
		backend:    backend,
	}
}

// Forward returns the prior mean at each input point: the constant,
// broadcast over the point dimension.
//
// Input shape: (..., n, d). Output shape: (..., n).
func (c *Constant) Forward(input *tensor.Dense) *tensor.Dense {
	if input.Dim() < 2 {
		panic(fmt.Sprintf("Constant.Forward: expected at least 2D input [points, features], got shape %v", input.Shape()))
	}
	out := input.Shape()[:input.Dim()-1].Clone()
	return c.backend.Expand(c.constant.Value(), out)
}

// SetConstant sets the constant of every batch entry to the same value.
func (c *Constant) SetConstant(v float64) {
	data := c.constant.Value().Data()
	for i := range data {
		data[i] = v
	}
}

// Parameters returns the learnable parameters: the constant.
func (c *Constant) Parameters() []*Parameter {
	return []*Parameter{c.constant}
}
