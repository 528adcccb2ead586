package nn

import (
	"github.com/Hanlos/BigDL/tensor"
)

// Identity passes its input through unchanged in both directions.
type Identity[B tensor.Backend] struct{}

// NewIdentity creates a new Identity module.
func NewIdentity[B tensor.Backend]() *Identity[B] {
	return &Identity[B]{}
}

// UpdateOutput returns the input unchanged.
func (m *Identity[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	return input
}

// UpdateGradInput returns the output gradient unchanged.
func (m *Identity[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	return gradOutput
}

// AccGradParameters is a no-op (Identity has no parameters).
func (m *Identity[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {}

// Parameters returns nil (Identity has no trainable parameters).
func (m *Identity[B]) Parameters() []*Parameter[B] {
	return nil
}
