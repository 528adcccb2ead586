package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hanlos/BigDL/backend/cpu"
	"github.com/Hanlos/BigDL/tensor"
)

// TestShape_NumElements tests element counting, including the scalar case.
func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 12, tensor.Shape{3, 4}.NumElements())
	assert.Equal(t, 5, tensor.Shape{5}.NumElements())
	assert.Equal(t, 1, tensor.Shape{}.NumElements())
}

// TestShape_Validate tests dimension validation.
func TestShape_Validate(t *testing.T) {
	assert.NoError(t, tensor.Shape{2, 3}.Validate())
	assert.Error(t, tensor.Shape{2, 0}.Validate())
	assert.Error(t, tensor.Shape{-1}.Validate())
}

// TestShape_ComputeStrides tests row-major stride computation.
func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, tensor.Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, tensor.Shape{7}.ComputeStrides())
}

// TestBroadcastShapes tests NumPy-style broadcasting rules.
func TestBroadcastShapes(t *testing.T) {
	result, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 5})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 5}, result)

	result, err = tensor.BroadcastShapes(tensor.Shape{1, 5}, tensor.Shape{4, 5})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 5}, result)

	_, err = tensor.BroadcastShapes(tensor.Shape{3, 4}, tensor.Shape{3, 5})
	assert.Error(t, err)
}

// TestFromSlice tests tensor creation from a Go slice.
func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	tt, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, tt.Shape())
	assert.Equal(t, tensor.Float32, tt.DType())
	assert.Equal(t, float32(6), tt.At(1, 2))

	_, err = tensor.FromSlice([]float32{1, 2}, tensor.Shape{3}, backend)
	assert.Error(t, err)
}

// TestCreation tests the Zeros/Ones/Full helpers.
func TestCreation(t *testing.T) {
	backend := cpu.New()

	z := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	for _, v := range z.Data() {
		assert.Equal(t, float32(0), v)
	}

	o := tensor.Ones[float32](tensor.Shape{3}, backend)
	for _, v := range o.Data() {
		assert.Equal(t, float32(1), v)
	}

	f := tensor.Full[float32](tensor.Shape{2}, 4.5, backend)
	assert.Equal(t, []float32{4.5, 4.5}, f.Data())
}

// TestClone verifies deep-copy semantics.
func TestClone(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	b := a.Clone()
	b.Data()[0] = 99

	assert.Equal(t, float32(1), a.Data()[0], "clone must not share storage")
	assert.Equal(t, float32(99), b.Data()[0])
}

// TestOps smoke-tests the method-style operations.
func TestOps(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float32{11, 22, 33, 44}, a.Add(b).Data())
	assert.Equal(t, []float32{9, 18, 27, 36}, b.Sub(a).Data())
	assert.Equal(t, []float32{2, 4, 6, 8}, a.MulScalar(2).Data())
	assert.InDelta(t, 10.0, a.Sum(), 1e-6)

	// [1 2; 3 4] @ [10 20; 30 40] = [70 100; 150 220]
	assert.Equal(t, []float32{70, 100, 150, 220}, a.MatMul(b).Data())
	assert.Equal(t, []float32{1, 3, 2, 4}, a.Transpose().Data())
	assert.Equal(t, tensor.Shape{4}, a.Reshape(4).Shape())
	assert.Equal(t, []float32{4, 6}, a.SumDim(0).Data())
}
