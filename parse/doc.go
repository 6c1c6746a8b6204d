// Package parse decodes JSON text into ir.Node trees.
//
// Object keys keep the order in which they appear in the input. A key that
// appears more than once keeps its first position and takes its last value.
//
//	node, err := parse.Parse([]byte(`{"user":{"age":30}}`))
//	if errors.Is(err, parse.ErrParse) {
//	    // not JSON
//	}
package parse
