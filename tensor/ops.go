package tensor

// Method-style operations delegating to the tensor's backend.
// These keep module code readable: x.MatMul(w).Add(b).

// Add performs element-wise addition with broadcasting.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// MatMul performs 2D matrix multiplication.
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Transpose swaps the two dimensions of a 2D tensor.
func (t *Tensor[T, B]) Transpose() *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw), t.backend)
}

// Reshape returns a tensor with the same data under a new shape.
func (t *Tensor[T, B]) Reshape(dims ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Reshape(t.raw, Shape(dims)), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// Sum returns the sum of all elements.
func (t *Tensor[T, B]) Sum() float64 {
	return t.backend.Sum(t.raw)
}

// SumDim sums along the given dimension, dropping it from the shape.
func (t *Tensor[T, B]) SumDim(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.SumDim(t.raw, dim), t.backend)
}
