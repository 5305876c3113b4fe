// Package tensor provides the small numeric-array layer used by the
// boundary preprocessing: typed dense tensors, shapes with symbolic
// dimensions, and the stacking, padding and comparison primitives the
// edge-map pipeline is built from.
package tensor

// DType is a constraint for supported tensor element types. Named types
// are rejected at compile time since DataTypeOf only knows these.
type DType interface {
	float32 | float64 | int32 | int64 | uint8 | bool
}

// Label is a constraint for element types that can hold class indices.
type Label interface {
	int32 | int64 | uint8
}

// DataType is the runtime element type of a tensor.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns the numpy-style name of the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the DataType matching the type parameter T.
func DataTypeOf[T DType]() DataType {
	var zero T
	return inferDataType(zero)
}

func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
