package nn

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// Criterion is the contract loss functions satisfy: a scalar loss from
// prediction and target, and the loss gradient with respect to the
// prediction. Criteria sit outside the graph; their Backward output is
// what callers feed into a graph's backward pass.
type Criterion[B tensor.Backend] interface {
	// Forward computes the scalar loss.
	Forward(input, target *tensor.Tensor[float32, B]) float32

	// Backward computes dLoss/dInput.
	Backward(input, target *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]
}

// MSE computes mean squared error: mean((input - target)²).
type MSE[B tensor.Backend] struct{}

// NewMSE creates a new mean-squared-error criterion.
func NewMSE[B tensor.Backend]() *MSE[B] {
	return &MSE[B]{}
}

// Forward computes mean((input - target)²).
func (m *MSE[B]) Forward(input, target *tensor.Tensor[float32, B]) float32 {
	if !input.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("MSE: input shape %v does not match target shape %v", input.Shape(), target.Shape()))
	}

	diff := input.Sub(target)
	return float32(diff.Mul(diff).Sum() / float64(input.NumElements()))
}

// Backward computes dLoss/dInput = 2 * (input - target) / n.
func (m *MSE[B]) Backward(input, target *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !input.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("MSE: input shape %v does not match target shape %v", input.Shape(), target.Shape()))
	}

	return input.Sub(target).MulScalar(2.0 / float64(input.NumElements()))
}
