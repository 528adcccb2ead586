package tensor

// Backend defines the interface compute backends must implement.
// Backends carry out the actual numeric work on RawTensors; the graph
// executor and the nn modules are written against this interface only.
//
// Backends panic on shape violations: every operation here is reached from
// module code that has already validated its configuration, so a mismatch
// is a programmer error, not a recoverable condition.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor) *RawTensor

	// Scalar operations (element-wise with a scalar).
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	AddScalar(x *RawTensor, scalar float64) *RawTensor

	// Reduction operations.
	Sum(x *RawTensor) float64
	SumDim(x *RawTensor, dim int) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
