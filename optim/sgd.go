package optim

import (
	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
//
// Gradients are read from each parameter's accumulator, which the backward
// pass filled via AccGradParameters.
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // learning rate (default: 0.01)
	Momentum float32 // momentum factor (default: 0, range [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
	}
}

// Step applies one update to every parameter with an accumulated gradient.
// Parameters whose accumulator is still nil are skipped.
func (s *SGD[B]) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		update := grad
		if s.momentum != 0 {
			update = s.advanceVelocity(param, grad)
		}

		// param -= lr * update, written back into the parameter's storage.
		stepped := param.Tensor().Sub(update.MulScalar(float64(s.lr)))
		copy(param.Tensor().Data(), stepped.Data())
	}
}

// advanceVelocity folds the gradient into the parameter's velocity buffer
// and returns it.
func (s *SGD[B]) advanceVelocity(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	velocity, ok := s.velocities[param]
	if !ok {
		velocity = tensor.ZerosLike(param.Tensor())
		s.velocities[param] = velocity
	}

	next := velocity.MulScalar(float64(s.momentum)).Add(grad)
	copy(velocity.Data(), next.Data())
	return velocity
}

// ZeroGrad clears the gradient accumulator of every parameter.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD[B]) LR() float32 {
	return s.lr
}

// SetLR updates the learning rate. Useful for schedules.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
