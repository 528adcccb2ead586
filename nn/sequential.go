package nn

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input. Because backward
// passes need every stage's forward input and output gradient, the
// container caches both per stage on each pass; the caches are overwritten
// on the next UpdateOutput / UpdateGradInput call.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
type Sequential[B tensor.Backend] struct {
	modules     []Module[B]
	stageInputs []*Activity[B] // forward input per stage, from the last UpdateOutput
	stageGrads  []*Activity[B] // output gradient per stage, from the last UpdateGradInput
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{modules: modules}
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
// Panics if index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic(fmt.Sprintf("Sequential: index %d out of bounds (len %d)", index, len(s.modules)))
	}
	return s.modules[index]
}

// UpdateOutput applies all modules in sequence, caching each stage's input.
func (s *Sequential[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	if len(s.stageInputs) != len(s.modules) {
		s.stageInputs = make([]*Activity[B], len(s.modules))
		s.stageGrads = make([]*Activity[B], len(s.modules))
	}

	output := input
	for i, module := range s.modules {
		s.stageInputs[i] = output
		output = module.UpdateOutput(output)
	}
	return output
}

// UpdateGradInput walks the chain in reverse, caching each stage's output
// gradient. Must follow an UpdateOutput call with the same input.
func (s *Sequential[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	grad := gradOutput
	for i := len(s.modules) - 1; i >= 0; i-- {
		s.stageGrads[i] = grad
		grad = s.modules[i].UpdateGradInput(s.stageInputs[i], grad)
	}
	return grad
}

// AccGradParameters replays the reverse walk with the cached stage inputs
// and gradients. Must follow a matching UpdateGradInput call.
func (s *Sequential[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		s.modules[i].AccGradParameters(s.stageInputs[i], s.stageGrads[i], scale)
	}
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}
