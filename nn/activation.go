package nn

import (
	"github.com/Hanlos/BigDL/tensor"
)

// ReLUOps is the capability interface for backends that support ReLU and
// its gradient.
type ReLUOps interface {
	ReLU(x *tensor.RawTensor) *tensor.RawTensor
	ReLUGrad(input, gradOutput *tensor.RawTensor) *tensor.RawTensor
}

// SigmoidOps is the capability interface for backends that support Sigmoid
// and its gradient (computed from the forward output).
type SigmoidOps interface {
	Sigmoid(x *tensor.RawTensor) *tensor.RawTensor
	SigmoidGrad(output, gradOutput *tensor.RawTensor) *tensor.RawTensor
}

// TanhOps is the capability interface for backends that support Tanh and
// its gradient (computed from the forward output).
type TanhOps interface {
	Tanh(x *tensor.RawTensor) *tensor.RawTensor
	TanhGrad(output, gradOutput *tensor.RawTensor) *tensor.RawTensor
}

// ReLU is the rectified linear activation module: f(x) = max(0, x).
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// UpdateOutput applies ReLU element-wise.
func (m *ReLU[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	x := input.Tensor()
	ops, ok := any(x.Backend()).(ReLUOps)
	if !ok {
		panic("ReLU: backend must implement ReLUOps")
	}
	return FromTensor(tensor.New[float32, B](ops.ReLU(x.Raw()), x.Backend()))
}

// UpdateGradInput passes the gradient through where the forward input was
// positive and zeroes it elsewhere.
func (m *ReLU[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	x := input.Tensor()
	g := gradOutput.Tensor()
	ops, ok := any(x.Backend()).(ReLUOps)
	if !ok {
		panic("ReLU: backend must implement ReLUOps")
	}
	return FromTensor(tensor.New[float32, B](ops.ReLUGrad(x.Raw(), g.Raw()), x.Backend()))
}

// AccGradParameters is a no-op (ReLU has no parameters).
func (m *ReLU[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {}

// Parameters returns nil.
func (m *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// Sigmoid is the logistic activation module: f(x) = 1 / (1 + exp(-x)).
//
// The forward output is cached on the module because the gradient is
// cheapest to express in terms of it: f'(x) = f(x) * (1 - f(x)).
type Sigmoid[B tensor.Backend] struct {
	output *tensor.Tensor[float32, B]
}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// UpdateOutput applies the sigmoid element-wise and caches the output.
func (m *Sigmoid[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	x := input.Tensor()
	ops, ok := any(x.Backend()).(SigmoidOps)
	if !ok {
		panic("Sigmoid: backend must implement SigmoidOps")
	}
	m.output = tensor.New[float32, B](ops.Sigmoid(x.Raw()), x.Backend())
	return FromTensor(m.output)
}

// UpdateGradInput computes gradOutput * out * (1 - out) from the cached
// forward output. UpdateOutput must have run first.
func (m *Sigmoid[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	if m.output == nil {
		panic("Sigmoid: UpdateGradInput called before UpdateOutput")
	}
	g := gradOutput.Tensor()
	ops := any(g.Backend()).(SigmoidOps)
	return FromTensor(tensor.New[float32, B](ops.SigmoidGrad(m.output.Raw(), g.Raw()), g.Backend()))
}

// AccGradParameters is a no-op (Sigmoid has no parameters).
func (m *Sigmoid[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {}

// Parameters returns nil.
func (m *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// Tanh is the hyperbolic tangent activation module.
//
// Like Sigmoid, the forward output is cached for the gradient:
// f'(x) = 1 - f(x)².
type Tanh[B tensor.Backend] struct {
	output *tensor.Tensor[float32, B]
}

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// UpdateOutput applies tanh element-wise and caches the output.
func (m *Tanh[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	x := input.Tensor()
	ops, ok := any(x.Backend()).(TanhOps)
	if !ok {
		panic("Tanh: backend must implement TanhOps")
	}
	m.output = tensor.New[float32, B](ops.Tanh(x.Raw()), x.Backend())
	return FromTensor(m.output)
}

// UpdateGradInput computes gradOutput * (1 - out²) from the cached forward
// output. UpdateOutput must have run first.
func (m *Tanh[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	if m.output == nil {
		panic("Tanh: UpdateGradInput called before UpdateOutput")
	}
	g := gradOutput.Tensor()
	ops := any(g.Backend()).(TanhOps)
	return FromTensor(tensor.New[float32, B](ops.TanhGrad(m.output.Raw(), g.Raw()), g.Backend()))
}

// AccGradParameters is a no-op (Tanh has no parameters).
func (m *Tanh[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {}

// Parameters returns nil.
func (m *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}
