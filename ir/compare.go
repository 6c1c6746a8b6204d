package ir

import (
	"strconv"
)

// Equal reports whether a and b hold the same value. Object fields must
// appear in the same order. Numbers are equal when their values are, however
// they are represented.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return numberEqual(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			if f.String != b.Fields[i].String {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	fa, okA := float(a)
	fb, okB := float(b)
	if okA && okB {
		return fa == fb
	}
	return a.Number != "" && a.Number == b.Number
}

func float(n *Node) (float64, bool) {
	switch {
	case n.Int64 != nil:
		return float64(*n.Int64), true
	case n.Float64 != nil:
		return *n.Float64, true
	}
	f, err := strconv.ParseFloat(n.Number, 64)
	return f, err == nil
}
