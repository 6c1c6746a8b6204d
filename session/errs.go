package session

import "errors"

var (
	// ErrNotEditing is returned by operations which need the Editing state.
	ErrNotEditing = errors.New("not editing")
	// ErrBusy is returned while a save is in progress.
	ErrBusy = errors.New("save in progress")
)
