package nn

import (
	"github.com/Hanlos/BigDL/tensor"
)

// Input is the identity placeholder module that marks a graph entry point.
//
// Every declared graph input wraps one. It exists so an entry point has a
// module to evaluate like any other node, and so a caller can route a
// tensor into the middle of what would otherwise be a merged multi-tensor
// computation.
type Input[B tensor.Backend] struct {
	Identity[B]
}

// NewInput creates a new Input placeholder module.
func NewInput[B tensor.Backend]() *Input[B] {
	return &Input[B]{}
}
