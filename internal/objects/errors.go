package objects

import "errors"

// Errors returned by the object database. Callers match them with errors.Is,
// the wrapped message names the offending identifier.
var (
	ErrInvalidIdentifier = errors.New("invalid object identifier")
	ErrNotFound          = errors.New("object not found")
	ErrUnknownType       = errors.New("unknown object type")
	ErrCorruptObject     = errors.New("corrupt object")
	ErrStoreClosed       = errors.New("object store is closed")
)
