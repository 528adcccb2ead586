package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanlos/BigDL/backend/cpu"
	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/tensor"
)

// setParam overwrites a parameter's storage with known values.
func setParam(t *testing.T, p *nn.Parameter[Backend], values []float32) {
	t.Helper()
	require.Len(t, values, len(p.Tensor().Data()))
	copy(p.Tensor().Data(), values)
}

// TestLinear_Forward tests y = x @ W.T + b against hand-computed values.
func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()

	lin := nn.NewLinear(2, 2, backend)
	setParam(t, lin.Weight(), []float32{1, 2, 3, 4}) // [[1 2] [3 4]]
	setParam(t, lin.Bias(), []float32{0.5, -0.5})

	x := ft(t, []float32{1, 1, 2, 0}, tensor.Shape{2, 2})
	output := lin.UpdateOutput(nn.FromTensor(x)).Tensor()

	assert.Equal(t, tensor.Shape{2, 2}, output.Shape())
	assert.InDeltaSlice(t, []float32{3.5, 6.5, 2.5, 5.5}, output.Data(), 1e-6)
}

// TestLinear_Backward tests dL/dx = gradOutput @ W.
func TestLinear_Backward(t *testing.T) {
	backend := cpu.New()

	lin := nn.NewLinear(2, 2, backend)
	setParam(t, lin.Weight(), []float32{1, 2, 3, 4})

	x := ft(t, []float32{1, 1, 2, 0}, tensor.Shape{2, 2})
	g := ft(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})

	gradInput := lin.UpdateGradInput(nn.FromTensor(x), nn.FromTensor(g)).Tensor()
	assert.InDeltaSlice(t, []float32{1, 2, 3, 4}, gradInput.Data(), 1e-6)
}

// TestLinear_AccGradParameters tests weight and bias gradient accumulation,
// including repeated accumulation with a scale factor.
func TestLinear_AccGradParameters(t *testing.T) {
	backend := cpu.New()

	lin := nn.NewLinear(2, 2, backend)

	x := nn.FromTensor(ft(t, []float32{1, 1, 2, 0}, tensor.Shape{2, 2}))
	g := nn.FromTensor(ft(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2}))

	require.Nil(t, lin.Weight().Grad(), "no gradient before accumulation")

	lin.AccGradParameters(x, g, 1)

	// gradW = g.T @ x = [[1 1] [2 0]], gradB = column sums of g = [1 1].
	assert.InDeltaSlice(t, []float32{1, 1, 2, 0}, lin.Weight().Grad().Data(), 1e-6)
	assert.InDeltaSlice(t, []float32{1, 1}, lin.Bias().Grad().Data(), 1e-6)

	// Accumulation adds: a second pass at scale 0.5 gives 1.5x.
	lin.AccGradParameters(x, g, 0.5)
	assert.InDeltaSlice(t, []float32{1.5, 1.5, 3, 0}, lin.Weight().Grad().Data(), 1e-6)
	assert.InDeltaSlice(t, []float32{1.5, 1.5}, lin.Bias().Grad().Data(), 1e-6)

	lin.Weight().ZeroGrad()
	assert.InDeltaSlice(t, []float32{0, 0, 0, 0}, lin.Weight().Grad().Data(), 1e-6)
}

// TestLinear_InputValidation tests shape checks on the forward path.
func TestLinear_InputValidation(t *testing.T) {
	backend := cpu.New()
	lin := nn.NewLinear(3, 2, backend)

	bad1D := nn.FromTensor(ft(t, []float32{1, 2, 3}, tensor.Shape{3}))
	assert.Panics(t, func() { lin.UpdateOutput(bad1D) })

	badFeatures := nn.FromTensor(ft(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2}))
	assert.Panics(t, func() { lin.UpdateOutput(badFeatures) })
}

// TestLinear_Parameters verifies the parameter list and its names.
func TestLinear_Parameters(t *testing.T) {
	backend := cpu.New()
	lin := nn.NewLinear(4, 3, backend)

	params := lin.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "weight", params[0].Name())
	assert.Equal(t, "bias", params[1].Name())
	assert.Equal(t, tensor.Shape{3, 4}, params[0].Tensor().Shape())
	assert.Equal(t, tensor.Shape{3}, params[1].Tensor().Shape())
}
