package nn

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// Parameter represents a trainable parameter of a module: a tensor plus its
// gradient accumulator.
//
// The gradient buffer is allocated lazily on the first accumulation and
// then reused in place across training iterations. AccGradParameters adds
// into it; the optimizer reads it and ZeroGrad clears it.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter creates a new trainable parameter.
//
// The tensor should be initialized before creating the Parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient accumulator, or nil if nothing has been
// accumulated yet.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// AccumulateGrad adds scale * delta into the gradient accumulator.
// Panics if delta's shape does not match the parameter's shape.
func (p *Parameter[B]) AccumulateGrad(delta *tensor.Tensor[float32, B], scale float32) {
	if !delta.Shape().Equal(p.tensor.Shape()) {
		panic(fmt.Sprintf("Parameter %q: gradient shape %v does not match parameter shape %v",
			p.name, delta.Shape(), p.tensor.Shape()))
	}

	if p.grad == nil {
		p.grad = tensor.ZerosLike(p.tensor)
	}

	updated := p.grad.Add(delta.MulScalar(float64(scale)))
	copy(p.grad.Data(), updated.Data())
}

// ZeroGrad zeroes the gradient accumulator in place.
// The buffer is kept so repeated training iterations do not reallocate.
func (p *Parameter[B]) ZeroGrad() {
	if p.grad == nil {
		return
	}
	data := p.grad.Data()
	for i := range data {
		data[i] = 0
	}
}
