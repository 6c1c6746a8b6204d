package graph

import (
	"strconv"

	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/ir/kpath"
	"github.com/signadot/nodeedit/node"
)

type Node struct {
	ID   string
	Path kpath.Path
	Rows []node.Row
}

// Build returns the nodes of doc in document order, with IDs "1", "2", ...
func Build(doc *ir.Node) []*Node {
	b := &builder{}
	if doc != nil {
		b.visit(doc, kpath.Path{})
	}
	return b.nodes
}

type builder struct {
	nodes []*Node
}

func (b *builder) add(path kpath.Path, rows []node.Row) {
	b.nodes = append(b.nodes, &Node{
		ID:   strconv.Itoa(len(b.nodes) + 1),
		Path: path,
		Rows: rows,
	})
}

func (b *builder) visit(v *ir.Node, path kpath.Path) {
	switch v.Type {
	case ir.ObjectType:
		rows := make([]node.Row, 0, len(v.Fields))
		for i, f := range v.Fields {
			child := v.Values[i]
			switch child.Type {
			case ir.ArrayType, ir.ObjectType:
				key := f.String
				rows = append(rows, node.Row{
					Key:   &key,
					Value: ir.FromInt(int64(len(child.Values))),
					Type:  child.Type,
				})
			default:
				rows = append(rows, node.KeyRow(f.String, child))
			}
		}
		b.add(path, rows)
		for i, f := range v.Fields {
			child := v.Values[i]
			if child.Type == ir.ArrayType || child.Type == ir.ObjectType {
				b.visit(child, path.Append(kpath.Key(f.String)))
			}
		}
	case ir.ArrayType:
		for i, child := range v.Values {
			b.visit(child, path.Append(kpath.Index(i)))
		}
	default:
		b.add(path, []node.Row{node.ValueRow(v)})
	}
}
