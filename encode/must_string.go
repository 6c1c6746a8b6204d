package encode

import (
	"bytes"

	"github.com/signadot/nodeedit/ir"
)

// MustString encodes node compactly, panicking on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return buf.String()
}
