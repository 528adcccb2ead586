package nn

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// CAddTable sums the tensors of a table input element-wise.
//
// It is the canonical multi-predecessor module: a graph node wrapping a
// CAddTable with n predecessors receives a table of n tensors and produces
// their sum. All table elements must share one shape.
type CAddTable[B tensor.Backend] struct{}

// NewCAddTable creates a new CAddTable module.
func NewCAddTable[B tensor.Backend]() *CAddTable[B] {
	return &CAddTable[B]{}
}

// UpdateOutput returns the element-wise sum of the input table.
func (m *CAddTable[B]) UpdateOutput(input *Activity[B]) *Activity[B] {
	ts := input.Table()
	if len(ts) == 0 {
		panic("CAddTable: empty input table")
	}
	for i := 1; i < len(ts); i++ {
		if !ts[i].Shape().Equal(ts[0].Shape()) {
			panic(fmt.Sprintf("CAddTable: shape mismatch at index %d: %v vs %v",
				i, ts[i].Shape(), ts[0].Shape()))
		}
	}

	sum := ts[0]
	for _, t := range ts[1:] {
		sum = sum.Add(t)
	}
	return FromTensor(sum)
}

// UpdateGradInput distributes the output gradient unchanged to every table
// position. The returned table shares the gradOutput tensor; consumers
// treat gradients as read-only.
func (m *CAddTable[B]) UpdateGradInput(input, gradOutput *Activity[B]) *Activity[B] {
	g := gradOutput.Tensor()
	grads := make([]*tensor.Tensor[float32, B], len(input.Table()))
	for i := range grads {
		grads[i] = g
	}
	return FromTable(grads...)
}

// AccGradParameters is a no-op (CAddTable has no parameters).
func (m *CAddTable[B]) AccGradParameters(input, gradOutput *Activity[B], scale float32) {}

// Parameters returns nil.
func (m *CAddTable[B]) Parameters() []*Parameter[B] {
	return nil
}
