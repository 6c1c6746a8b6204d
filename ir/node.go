package ir

import (
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y. The copy shares no pointers with y, and its
// Parent is nil.
func (y *Node) Clone() *Node {
	res := y.CloneTo(&Node{})
	res.Parent = nil
	return res
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number node from a JSON number literal, choosing Int64
// if the literal is an integer which fits, then Float64, and otherwise keeping
// the literal.
func FromNumber(lit string) *Node {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{
		Type:   NumberType,
		Number: lit,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object node with fields in the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Append(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Append adds field key with value v at the end of object y. It does not
// check for an existing field with the same key.
func (y *Node) Append(key string, v *Node) {
	i := len(y.Fields)
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	})
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	y.Values = append(y.Values, v)
}

// FieldIndex returns the index of key among the fields of object y, or -1.
func (y *Node) FieldIndex(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// Get returns the value of field in object y, or nil.
func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Put sets the value at index i of the container y, maintaining parent links.
func (y *Node) Put(i int, v *Node) {
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = ""
	if y.Type == ObjectType {
		v.ParentField = y.Fields[i].String
	}
	y.Values[i] = v
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
