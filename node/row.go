// Package node turns the display rows of a graph node into editable text.
package node

import (
	"github.com/signadot/nodeedit/ir"
)

// Row is one flat entry of a node's visible content. Rows of type
// ir.ArrayType or ir.ObjectType stand for container children shown as other
// nodes of the graph.
type Row struct {
	// Key is nil when the node is a bare value rather than a keyed object.
	Key   *string
	Value *ir.Node
	Type  ir.Type
}

// KeyRow returns a keyed row of value's type.
func KeyRow(key string, value *ir.Node) Row {
	return Row{Key: &key, Value: value, Type: value.Type}
}

// ValueRow returns a row without key.
func ValueRow(value *ir.Node) Row {
	return Row{Value: value, Type: value.Type}
}

// HasKey reports whether r has a non-empty key.
func (r Row) HasKey() bool {
	return r.Key != nil && *r.Key != ""
}

func (r Row) IsContainer() bool {
	return r.Type == ir.ArrayType || r.Type == ir.ObjectType
}
