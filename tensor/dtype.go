package tensor

// DataType is the runtime element type of a RawTensor.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the element size in bytes.
func (d DataType) Size() int {
	switch d {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable type name.
func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DType is the compile-time constraint for tensor element types.
type DType interface {
	float32 | float64
}

// inferDataType maps a Go element type to its runtime DataType.
func inferDataType[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return Float64
	default:
		return Float32
	}
}
