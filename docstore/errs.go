package docstore

import "errors"

// ErrInvalidDocument indicates text given as a document is not valid JSON.
var ErrInvalidDocument = errors.New("invalid document")
