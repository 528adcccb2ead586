package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanlos/BigDL/backend/cpu"
	"github.com/Hanlos/BigDL/nn"
	"github.com/Hanlos/BigDL/optim"
	"github.com/Hanlos/BigDL/tensor"
)

type Backend = *cpu.CPUBackend

// TestSGD_Step checks the plain update rule param -= lr * grad.
func TestSGD_Step(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	param := nn.NewParameter("w", w)

	sgd := optim.NewSGD([]*nn.Parameter[Backend]{param}, optim.SGDConfig{LR: 0.1})
	assert.InDelta(t, 0.1, sgd.LR(), 1e-6)

	// No gradient accumulated yet: Step must leave the parameter alone.
	sgd.Step()
	assert.InDeltaSlice(t, []float32{1, 2}, param.Tensor().Data(), 1e-6)

	grad, err := tensor.FromSlice([]float32{10, -10}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	param.AccumulateGrad(grad, 1)

	sgd.Step()
	assert.InDeltaSlice(t, []float32{0, 3}, param.Tensor().Data(), 1e-6)

	sgd.ZeroGrad()
	assert.InDeltaSlice(t, []float32{0, 0}, param.Grad().Data(), 1e-6)
}

// TestSGD_Momentum checks velocity accumulation across two steps.
func TestSGD_Momentum(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{0}, tensor.Shape{1}, backend)
	require.NoError(t, err)
	param := nn.NewParameter("w", w)

	sgd := optim.NewSGD([]*nn.Parameter[Backend]{param}, optim.SGDConfig{LR: 1, Momentum: 0.5})

	grad, err := tensor.FromSlice([]float32{1}, tensor.Shape{1}, backend)
	require.NoError(t, err)

	// Step 1: velocity = 1, param = -1.
	param.AccumulateGrad(grad, 1)
	sgd.Step()
	sgd.ZeroGrad()
	assert.InDelta(t, -1.0, param.Tensor().Data()[0], 1e-6)

	// Step 2: velocity = 0.5*1 + 1 = 1.5, param = -2.5.
	param.AccumulateGrad(grad, 1)
	sgd.Step()
	sgd.ZeroGrad()
	assert.InDelta(t, -2.5, param.Tensor().Data()[0], 1e-6)
}

// TestSGD_DefaultLR verifies the zero-value config gets a usable rate.
func TestSGD_DefaultLR(t *testing.T) {
	sgd := optim.NewSGD[Backend](nil, optim.SGDConfig{})
	assert.InDelta(t, 0.01, sgd.LR(), 1e-6)

	sgd.SetLR(0.2)
	assert.InDelta(t, 0.2, sgd.LR(), 1e-6)
}

// TestSGD_LinearRegression fits y = 2x + 1 with a single Linear layer. The
// problem is convex, so gradient descent must converge.
func TestSGD_LinearRegression(t *testing.T) {
	backend := cpu.New()

	lin := nn.NewLinear(1, 1, backend)
	criterion := nn.NewMSE[Backend]()
	sgd := optim.NewSGD(lin.Parameters(), optim.SGDConfig{LR: 0.1})

	x, err := tensor.FromSlice([]float32{-1, 0, 1, 2}, tensor.Shape{4, 1}, backend)
	require.NoError(t, err)
	y, err := tensor.FromSlice([]float32{-1, 1, 3, 5}, tensor.Shape{4, 1}, backend)
	require.NoError(t, err)

	input := nn.FromTensor(x)
	for i := 0; i < 500; i++ {
		output := lin.UpdateOutput(input)
		grad := criterion.Backward(output.Tensor(), y)
		lin.AccGradParameters(input, nn.FromTensor(grad), 1)
		sgd.Step()
		sgd.ZeroGrad()
	}

	output := lin.UpdateOutput(input).Tensor()
	loss := criterion.Forward(output, y)
	assert.Less(t, loss, float32(1e-4))
	assert.InDelta(t, 2.0, lin.Weight().Tensor().Data()[0], 0.05)
	assert.InDelta(t, 1.0, lin.Bias().Tensor().Data()[0], 0.05)
}
