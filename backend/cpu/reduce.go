package cpu

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// Sum returns the sum of all elements.
func (c *CPUBackend) Sum(x *tensor.RawTensor) float64 {
	var total float64
	switch x.DType() {
	case tensor.Float32:
		for _, v := range x.AsFloat32() {
			total += float64(v)
		}
	case tensor.Float64:
		for _, v := range x.AsFloat64() {
			total += v
		}
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return total
}

// SumDim sums along the given dimension, dropping it from the shape.
// Summing the only dimension of a 1D tensor yields a shape-{1} tensor.
func (c *CPUBackend) SumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for shape %v", dim, shape))
	}

	outShape := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			outShape = append(outShape, d)
		}
	}
	if len(outShape) == 0 {
		outShape = tensor.Shape{1}
	}

	result := newRaw(outShape, x.DType(), c.device)

	switch x.DType() {
	case tensor.Float32:
		sumDim(result.AsFloat32(), x.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumDim(result.AsFloat64(), x.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

func sumDim[T tensor.DType](out, in []T, shape tensor.Shape, dim int) {
	// outer * reduced * inner decomposition of the row-major layout.
	outer, inner := 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	reduced := shape[dim]

	for o := 0; o < outer; o++ {
		for r := 0; r < reduced; r++ {
			base := (o*reduced + r) * inner
			outBase := o * inner
			for i := 0; i < inner; i++ {
				out[outBase+i] += in[base+i]
			}
		}
	}
}
