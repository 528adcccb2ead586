package cpu

import (
	"math"

	"github.com/Hanlos/BigDL/tensor"
)

// Activation capability ops consumed by the nn package through its
// ReLUOps / SigmoidOps / TanhOps interfaces.

// ReLU applies f(x) = max(0, x) element-wise.
func (c *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x,
		func(v float32) float32 {
			if v > 0 {
				return v
			}
			return 0
		},
		func(v float64) float64 {
			if v > 0 {
				return v
			}
			return 0
		})
}

// ReLUGrad computes the ReLU input gradient: gradOutput where the forward
// input was positive, zero elsewhere.
func (c *CPUBackend) ReLUGrad(input, gradOutput *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("relugrad", input, gradOutput,
		func(x, g float32) float32 {
			if x > 0 {
				return g
			}
			return 0
		},
		func(x, g float64) float64 {
			if x > 0 {
				return g
			}
			return 0
		})
}

// Sigmoid applies f(x) = 1 / (1 + exp(-x)) element-wise.
func (c *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x,
		func(v float32) float32 { return float32(1.0 / (1.0 + math.Exp(float64(-v)))) },
		func(v float64) float64 { return 1.0 / (1.0 + math.Exp(-v)) })
}

// SigmoidGrad computes the sigmoid input gradient from the forward output:
// gradOutput * out * (1 - out).
func (c *CPUBackend) SigmoidGrad(output, gradOutput *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("sigmoidgrad", output, gradOutput,
		func(o, g float32) float32 { return g * o * (1 - o) },
		func(o, g float64) float64 { return g * o * (1 - o) })
}

// Tanh applies the hyperbolic tangent element-wise.
func (c *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary(x,
		func(v float32) float32 { return float32(math.Tanh(float64(v))) },
		func(v float64) float64 { return math.Tanh(v) })
}

// TanhGrad computes the tanh input gradient from the forward output:
// gradOutput * (1 - out²).
func (c *CPUBackend) TanhGrad(output, gradOutput *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("tanhgrad", output, gradOutput,
		func(o, g float32) float32 { return g * (1 - o*o) },
		func(o, g float64) float64 { return g * (1 - o*o) })
}
