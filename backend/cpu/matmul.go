package cpu

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
func (c *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2D tensors, got %v and %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", aShape, bShape))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]
	result := newRaw(tensor.Shape{m, n}, a.DType(), c.device)

	switch a.DType() {
	case tensor.Float32:
		matmul(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmul(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmul is a cache-friendly i-k-j triple loop.
func matmul[T tensor.DType](out, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			av := a[i*k+p]
			if av == 0 {
				continue
			}
			bRow := b[p*n : (p+1)*n]
			outRow := out[i*n : (i+1)*n]
			for j := range bRow {
				outRow[j] += av * bRow[j]
			}
		}
	}
}

// Transpose swaps the two dimensions of a 2D tensor.
func (c *CPUBackend) Transpose(t *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: expected 2D tensor, got %v", shape))
	}

	rows, cols := shape[0], shape[1]
	result := newRaw(tensor.Shape{cols, rows}, t.DType(), c.device)

	switch t.DType() {
	case tensor.Float32:
		transpose(result.AsFloat32(), t.AsFloat32(), rows, cols)
	case tensor.Float64:
		transpose(result.AsFloat64(), t.AsFloat64(), rows, cols)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}

func transpose[T tensor.DType](out, in []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = in[i*cols+j]
		}
	}
}
