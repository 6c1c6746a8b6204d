package ir

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

// String returns the name JSON Schema uses for t.
func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case BoolType:
		return "boolean"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
