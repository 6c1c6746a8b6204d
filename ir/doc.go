// Package ir provides the in-memory representation of JSON documents.
//
// # Node Structure
//
// A Node represents a single JSON value and works as a recursive tagged union:
// values are placed in fields depending on Type.
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Int64 if integral, else Float64, else the literal in Number
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key (a StringType node) for Values[i]
//
// Objects keep their keys in insertion order, which is the order in which they
// were parsed or constructed. Keys are unique.
//
// Each node maintains a link to its parent together with its index and field
// name in that parent. Constructors and Clone keep these links consistent.
//
// # Creating Nodes
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Al")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Comparison
//
//	same := ir.Equal(a, b)
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes before handing them to
// another goroutine.
package ir
