package cpu

import (
	"fmt"

	"github.com/Hanlos/BigDL/tensor"
)

// CPUBackend implements tensor operations in pure Go.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{device: tensor.CPU}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (c *CPUBackend) Device() tensor.Device {
	return c.device
}

// Add performs element-wise addition with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// Reshape returns a view of the same data under a new shape.
func (c *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// newRaw allocates a result tensor, panicking on failure. Shapes reaching
// the backend have already been validated by the caller.
func newRaw(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to create result tensor: %v", err))
	}
	return result
}
