// Package encode encodes IR nodes to JSON text.
//
// # Usage
//
//	// indented by 2 spaces, the default
//	err := encode.Encode(node, w)
//
//	// compact
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// highlighted for a terminal
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// Output matches what a JavaScript engine produces with
// JSON.stringify(v, null, indent): keys in object order, no HTML escaping,
// numbers in shortest round-trip form. No trailing newline is written.
//
// # Related Packages
//
//   - github.com/signadot/nodeedit/ir - IR representation
//   - github.com/signadot/nodeedit/parse - Parse text to IR
package encode
