package means

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// Parameter represents a learnable quantity of a mean function.
//
// Parameters are plain dense arrays; fitting them is left to the caller,
// there is no gradient machinery attached.
//
// Example:
//
//	constant := m.Parameters()[0]
//	fmt.Println(constant.Name(), constant.Value())
type Parameter struct {
	name  string
	value *tensor.Dense
}

// NewParameter creates a named parameter around an initialized value.
func NewParameter(name string, value *tensor.Dense) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter value.
func (p *Parameter) Value() *tensor.Dense {
	return p.value
}

// SetValue replaces the parameter value. The replacement must keep the
// parameter's shape; panics otherwise.
func (p *Parameter) SetValue(v *tensor.Dense) {
	if !v.Shape().Equal(p.value.Shape()) {
		panic(fmt.Sprintf("parameter %q: value shape %v does not match %v", p.name, v.Shape(), p.value.Shape()))
	}
	p.value = v
}
