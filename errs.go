package nodeedit

import "errors"

var (
	ErrPathMismatch  = errors.New("path does not match document")
	ErrNegativeIndex = errors.New("negative array index")
)
