// Package nodeedit applies an edit to one node of a JSON document.
//
// A node is addressed by a kpath.Path. Patch returns a new document in which
// only the addressed value changed; when both the old and the new value are
// objects they are merged, so fields the edit did not mention survive.
//
//	doc, _ := parse.ParseString(`{"user":{"age":30,"name":"Al"}}`)
//	res, err := nodeedit.Patch(doc, kpath.MustParse("user"), ir.FromKeyVals(
//	    []ir.KeyVal{{Key: "age", Val: ir.FromInt(31)}}))
//	// res is {"user":{"age":31,"name":"Al"}}
//
// # Related Packages
//
//   - github.com/signadot/nodeedit/node - node text normalization
//   - github.com/signadot/nodeedit/session - edit and save state machine
package nodeedit
