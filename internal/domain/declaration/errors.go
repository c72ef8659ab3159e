package declaration

import "errors"

var (
	ErrNotFound          = errors.New("declaration not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyMatched    = errors.New("declaration already matched")
	ErrNotMatchable      = errors.New("declaration not matchable")
	ErrForbidden         = errors.New("not allowed on this declaration")
)
