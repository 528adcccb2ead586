package cpu

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// binary dispatches an element-wise binary operation over the dtype,
// handling broadcasting.
func (c *CPUBackend) binary(name string, a, b *tensor.RawTensor,
	f32 func(x, y float32) float32, f64 func(x, y float64) float64) *tensor.RawTensor {

	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result := newRaw(outShape, a.DType(), c.device)

	switch a.DType() {
	case tensor.Float32:
		applyBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), outShape, a.Shape(), b.Shape(), f32)
	case tensor.Float64:
		applyBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), outShape, a.Shape(), b.Shape(), f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// applyBinary evaluates op over every output position.
// Same-shape inputs take the flat fast path; otherwise an odometer walk
// maps output coordinates to the (possibly size-1) input dimensions.
func applyBinary[T tensor.DType](out, a, b []T, outShape, aShape, bShape tensor.Shape, op func(T, T) T) {
	if aShape.Equal(bShape) {
		for i := range out {
			out[i] = op(a[i], b[i])
		}
		return
	}

	aStrides := aShape.ComputeStrides()
	bStrides := bShape.ComputeStrides()
	ndim := len(outShape)
	idx := make([]int, ndim)

	for flat := range out {
		aOff, bOff := 0, 0
		for d := 0; d < ndim; d++ {
			if ad := d - (ndim - len(aShape)); ad >= 0 && aShape[ad] > 1 {
				aOff += idx[d] * aStrides[ad]
			}
			if bd := d - (ndim - len(bShape)); bd >= 0 && bShape[bd] > 1 {
				bOff += idx[d] * bStrides[bd]
			}
		}
		out[flat] = op(a[aOff], b[bOff])

		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < outShape[d] {
				break
			}
			idx[d] = 0
		}
	}
}

// unary dispatches an element-wise unary operation over the dtype.
func (c *CPUBackend) unary(x *tensor.RawTensor,
	f32 func(v float32) float32, f64 func(v float64) float64) *tensor.RawTensor {

	result := newRaw(x.Shape(), x.DType(), c.device)

	switch x.DType() {
	case tensor.Float32:
		in, out := x.AsFloat32(), result.AsFloat32()
		for i := range in {
			out[i] = f32(in[i])
		}
	case tensor.Float64:
		in, out := x.AsFloat64(), result.AsFloat64()
		for i := range in {
			out[i] = f64(in[i])
		}
	default:
		panic(fmt.Sprintf("unary: unsupported dtype %s", x.DType()))
	}

	return result
}

// MulScalar multiplies every element by a scalar.
func (c *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return c.unary(x,
		func(v float32) float32 { return v * s32 },
		func(v float64) float64 { return v * scalar })
}

// AddScalar adds a scalar to every element.
func (c *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return c.unary(x,
		func(v float32) float32 { return v + s32 },
		func(v float64) float64 { return v + scalar })
}
