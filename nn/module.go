package nn

import (
	"github.com/Hanlos/BigDL/tensor"
)

// Module is the contract every computational graph element satisfies.
//
// The three operations mirror the classic forward/backward split:
//
//   - UpdateOutput computes the module output from its input. It is a pure
//     function of the input and the module's parameters, except that a
//     module may cache intermediate state for its own backward pass. It
//     must not mutate the input.
//   - UpdateGradInput computes the gradient of the loss with respect to the
//     module input. It must be called with the same input that produced the
//     output being differentiated; callers are responsible for this pairing.
//   - AccGradParameters accumulates the gradient of the loss with respect
//     to the module parameters into the parameters' gradient storage,
//     scaled by scale. Accumulation is additive across repeated calls.
//
// Modules without trainable parameters implement AccGradParameters as a
// no-op and return nil from Parameters.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// UpdateOutput computes the output of the module given an input.
	UpdateOutput(input *Activity[B]) *Activity[B]

	// UpdateGradInput computes the gradient with respect to the input.
	UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B]

	// AccGradParameters accumulates parameter gradients, scaled by scale.
	AccGradParameters(input, gradOutput *Activity[B], scale float32)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[B]
}
