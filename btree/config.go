package btree

import "fmt"

// Config configures a key-ordered B-tree.
type Config[K, V any] struct {
	// Compare defines the total order on keys. It must return a value < 0
	// if a sorts before b, 0 if both are equal, and > 0 otherwise.
	Compare func(a, b K) int
	// InvalidKey optionally rejects sentinel keys (for example nil byte
	// slices) at the API boundary. Get and Put fail with ErrInvalidKey for
	// keys rejected here.
	InvalidKey func(key K) bool
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	return cfg
}

func (cfg Config[K, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
