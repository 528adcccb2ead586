package nn

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Forward transformation: y = x @ W.T + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights are initialized with Xavier/Glorot uniform, biases with zeros.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [out_features, in_features]
	bias        *Parameter[B] // [out_features]
	backend     B
}

// NewLinear creates a new Linear layer.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	weightShape := tensor.Shape{outFeatures, inFeatures}
	weight := NewParameter("weight", Xavier(inFeatures, outFeatures, weightShape, backend))
	bias := NewParameter("bias", tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// checkInput validates the forward input and returns its tensor.
func (l *Linear[B]) checkInput(input *Activity[B]) *tensor.Tensor[float32, B] {
	x := input.Tensor()
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Linear: expected 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear: expected input with %d features, got %d", l.inFeatures, shape[1]))
	}
	return x
}

// UpdateOutput computes y = x @ W.T + b.
func (l *Linear[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	x := l.checkInput(input)

	w := l.weight.Tensor() // [out_features, in_features]
	output := x.MatMul(w.Transpose())

	// Broadcast bias over the batch dimension.
	b := l.bias.Tensor().Reshape(1, l.outFeatures)
	output = output.Add(b)

	return FromTensor(output)
}

// UpdateGradInput computes dL/dx = gradOutput @ W.
func (l *Linear[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	g := gradOutput.Tensor() // [batch, out_features]
	return FromTensor(g.MatMul(l.weight.Tensor()))
}

// AccGradParameters accumulates
//
//	dL/dW += scale * gradOutput.T @ x
//	dL/db += scale * sum(gradOutput, dim=0)
func (l *Linear[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {
	x := l.checkInput(input)
	g := gradOutput.Tensor()

	gradWeight := g.Transpose().MatMul(x) // [out_features, in_features]
	l.weight.AccumulateGrad(gradWeight, scale)

	gradBias := g.SumDim(0) // [out_features]
	l.bias.AccumulateGrad(gradBias, scale)
}

// Parameters returns [weight, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
