package note

import "errors"

var (
	ErrNotFound = errors.New("note not found")
	ErrNotOwner = errors.New("note belongs to another user")
)
