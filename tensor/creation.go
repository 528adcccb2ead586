package tensor

import (
	"fmt"
	"math/rand"
)

// newOrPanic allocates a RawTensor, panicking on an invalid shape.
// Creation helpers take shapes from module constructors which have already
// validated their configuration.
func newOrPanic[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, inferDataType[T](), b.Device())
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return New[T, B](raw, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return newOrPanic[T, B](shape, b)
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return newOrPanic[T, B](t.Shape(), t.Backend())
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with the given value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := newOrPanic[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor filled with samples from the standard normal
// distribution.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := newOrPanic[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64())
	}
	return t
}

// Rand creates a tensor filled with uniform samples from [low, high).
func Rand[T DType, B Backend](shape Shape, low, high T, b B) *Tensor[T, B] {
	t := newOrPanic[T, B](shape, b)
	data := t.Data()
	span := float64(high - low)
	for i := range data {
		data[i] = low + T(rand.Float64()*span)
	}
	return t
}
