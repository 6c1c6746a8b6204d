package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/nodeedit/ir"
)

var (
	ErrParse    = ir.ErrParse
	ErrTrailing = fmt.Errorf("%w: trailing data after value", ErrParse)
	ErrDepth    = fmt.Errorf("%w: nesting too deep", ErrParse)
	errKey      = errors.New("object key is not a string")
)
