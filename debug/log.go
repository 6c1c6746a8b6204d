package debug

import (
	"fmt"
	"os"

	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/ir"
)

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// JSON formats a node as compact JSON in Logf arguments.
type JSON struct {
	*ir.Node
}

func (j JSON) String() string {
	if j.Node == nil {
		return "<nil>"
	}
	buf, err := nodeString(j.Node)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", j.Type, err)
	}
	return buf
}

func nodeString(n *ir.Node) (res string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return encode.MustString(n), nil
}
