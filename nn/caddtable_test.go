package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/tensor"
)

// TestCAddTable_Forward sums a table element-wise.
func TestCAddTable_Forward(t *testing.T) {
	add := nn.NewCAddTable[Backend]()

	a := ft(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := ft(t, []float32{10, 20, 30}, tensor.Shape{3})
	c := ft(t, []float32{100, 200, 300}, tensor.Shape{3})

	output := add.UpdateOutput(nn.FromTable(a, b, c)).Tensor()
	assert.InDeltaSlice(t, []float32{111, 222, 333}, output.Data(), 1e-6)
}

// TestCAddTable_Backward fans the output gradient out to every position.
func TestCAddTable_Backward(t *testing.T) {
	add := nn.NewCAddTable[Backend]()

	a := ft(t, []float32{1, 2}, tensor.Shape{2})
	b := ft(t, []float32{3, 4}, tensor.Shape{2})
	input := nn.FromTable(a, b)
	add.UpdateOutput(input)

	g := ft(t, []float32{5, 6}, tensor.Shape{2})
	gradInput := add.UpdateGradInput(input, nn.FromTensor(g))

	require.True(t, gradInput.IsTable())
	table := gradInput.Table()
	require.Len(t, table, 2)
	assert.Same(t, g, table[0])
	assert.Same(t, g, table[1])
}

// TestCAddTable_Validation rejects empty and mismatched tables.
func TestCAddTable_Validation(t *testing.T) {
	add := nn.NewCAddTable[Backend]()

	assert.Panics(t, func() { add.UpdateOutput(nn.FromTable[Backend]()) })

	a := ft(t, []float32{1, 2}, tensor.Shape{2})
	b := ft(t, []float32{1, 2, 3}, tensor.Shape{3})
	assert.Panics(t, func() { add.UpdateOutput(nn.FromTable(a, b)) })

	// A plain tensor is not a valid table input.
	assert.Panics(t, func() { add.UpdateOutput(nn.FromTensor(a)) })
}
