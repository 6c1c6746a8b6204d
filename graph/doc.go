// Package graph renders a document as a flat list of nodes, each showing the
// scalar content of one object, array element or scalar root.
//
// Arrays have no node of their own: their elements do. Container values of an
// object appear in its node as rows typed ir.ArrayType or ir.ObjectType whose
// value is the number of children.
package graph
