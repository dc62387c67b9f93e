package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvalidKey signals a key rejected at the API boundary by the
	// configured validity hook.
	ErrInvalidKey = errors.New("btree: invalid key")
)
