package tensormedia

// DType enumerates the element types a tensor may carry.
type DType int

const (
	Uint8 DType = iota
	Uint16
	Int16
	Int32
	Float32
	Float64
)

// Size returns the element size in bytes.
func (dt DType) Size() int {
	switch dt {
	case Uint8:
		return 1
	case Uint16, Int16:
		return 2
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

func (dt DType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "unknown"
}

// ParseDType maps a dtype name to its DType. Used by the CLI.
func ParseDType(s string) (DType, bool) {
	for _, dt := range []DType{Uint8, Uint16, Int16, Int32, Float32, Float64} {
		if dt.String() == s {
			return dt, true
		}
	}
	return 0, false
}
