package nodeedit

import (
	"fmt"

	"github.com/signadot/nodeedit/debug"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/ir/kpath"
)

// Patch returns a copy of root with the value at path replaced by value, or
// merged with it when both are objects. Neither root nor value is modified,
// and the result shares no nodes with them. An empty path returns value.
//
// Containers missing along the way, or null, are created: an array if the
// following segment is an index and an object otherwise. Setting an index
// past the end of an array pads it with nulls.
func Patch(root *ir.Node, path kpath.Path, value *ir.Node) (*ir.Node, error) {
	if len(path) == 0 {
		return value, nil
	}
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", path.String(), debug.JSON{Node: value})
	}
	var res *ir.Node
	if root == nil || root.Type == ir.NullType {
		res = newContainer(path[0])
	} else {
		res = root.Clone()
	}
	cur := res
	for i := 0; i < len(path)-1; i++ {
		seg := path[i]
		next, err := slot(cur, seg, path[:i+1])
		if err != nil {
			return nil, err
		}
		if next == nil || next.Type == ir.NullType {
			next = newContainer(path[i+1])
			if debug.Patch() {
				debug.Logf("patch created %s at %s\n", next.Type, path[:i+1].String())
			}
			put(cur, seg, next)
		}
		cur = next
	}
	last := path[len(path)-1]
	existing, err := slot(cur, last, path)
	if err != nil {
		return nil, err
	}
	value = value.Clone()
	if isPlainObject(existing) && isPlainObject(value) {
		value = deepMerge(existing, value)
	}
	put(cur, last, value)
	return res, nil
}

// Get returns the value at path in root, or nil if there is none.
func Get(root *ir.Node, path kpath.Path) (*ir.Node, error) {
	cur := root
	for i, seg := range path {
		if cur == nil || cur.Type == ir.NullType {
			return nil, nil
		}
		next, err := slot(cur, seg, path[:i+1])
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// slot returns the value seg addresses in the container cur, nil if absent.
func slot(cur *ir.Node, seg kpath.Segment, at kpath.Path) (*ir.Node, error) {
	if seg.IsIndex() {
		if cur.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: %s expects array, got %s", ErrPathMismatch, at, cur.Type)
		}
		i := *seg.Index
		if i < 0 {
			return nil, fmt.Errorf("%w %d at %s", ErrNegativeIndex, i, at)
		}
		if i >= len(cur.Values) {
			return nil, nil
		}
		return cur.Values[i], nil
	}
	if cur.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: %s expects object, got %s", ErrPathMismatch, at, cur.Type)
	}
	return ir.Get(cur, seg.Key), nil
}

// put stores v at seg in cur; slot must have accepted seg for cur.
func put(cur *ir.Node, seg kpath.Segment, v *ir.Node) {
	if seg.IsIndex() {
		i := *seg.Index
		for len(cur.Values) <= i {
			n := ir.Null()
			n.Parent = cur
			n.ParentIndex = len(cur.Values)
			cur.Values = append(cur.Values, n)
		}
		cur.Put(i, v)
		return
	}
	if i := cur.FieldIndex(seg.Key); i != -1 {
		cur.Put(i, v)
		return
	}
	cur.Append(seg.Key, v)
}

func newContainer(next kpath.Segment) *ir.Node {
	if next.IsIndex() {
		return ir.FromSlice(nil)
	}
	return ir.FromKeyVals(nil)
}

func isPlainObject(n *ir.Node) bool {
	return n != nil && n.Type == ir.ObjectType
}
