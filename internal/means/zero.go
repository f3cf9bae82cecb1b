package means

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// Zero is a fixed zero mean with no learnable parameters.
type Zero struct{}

// NewZero creates a zero mean.
func NewZero() *Zero {
	return &Zero{}
}

// Forward returns zeros at each input point.
//
// Input shape: (..., n, d). Output shape: (..., n).
func (z *Zero) Forward(input *tensor.Dense) *tensor.Dense {
	if input.Dim() < 2 {
		panic(fmt.Sprintf("Zero.Forward: expected at least 2D input [points, features], got shape %v", input.Shape()))
	}
	return tensor.Zeros(input.Shape()[:input.Dim()-1].Clone())
}

// Parameters returns no parameters.
func (z *Zero) Parameters() []*Parameter {
	return nil
}
