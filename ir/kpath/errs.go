package kpath

import "errors"

var ErrBadPath = errors.New("bad path")
