package symtab

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"io"

	"github.com/npillmayer/symtab/btree"
	"golang.org/x/exp/constraints"
)

// Errors flagged by table operations. They alias the engine's sentinel
// errors, so errors.Is works with either package's name.
var (
	// ErrInvalidKey is flagged whenever a key is rejected at the API
	// boundary, e.g. a nil key on a byte-keyed table.
	ErrInvalidKey = btree.ErrInvalidKey
	// ErrInvalidConfig is flagged for an unusable table configuration.
	ErrInvalidConfig = btree.ErrInvalidConfig
)

// Table is an ordered symbol table of key-value pairs.
//
// Keys are kept sorted in a balanced multiway tree with fixed fanout
// btree.Fanout. Get, Put and Contains make a logarithmic number of probes;
// Size, Height and IsEmpty take constant time.
//
// A table created by one of the constructors is ready for use. Tables are
// not safe for concurrent mutation; see the package documentation.
type Table[K, V any] struct {
	tree *btree.Tree[K, V]
}

// New creates an empty table over a caller-supplied key order. compare must
// return a value < 0 if a sorts before b, 0 for equal keys, > 0 otherwise.
func New[K, V any](compare func(a, b K) int) (*Table[K, V], error) {
	tree, err := btree.New(btree.Config[K, V]{Compare: compare})
	if err != nil {
		return nil, err
	}
	return &Table[K, V]{tree: tree}, nil
}

// NewOrdered creates an empty table over a key type with natural order.
func NewOrdered[K constraints.Ordered, V any]() *Table[K, V] {
	table, err := New[K, V](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	assert(err == nil, "NewOrdered: cannot create table")
	return table
}

// NewBytes creates an empty table with byte-slice keys in lexicographic
// order. A nil key is invalid and rejected by Get and Put; an empty non-nil
// key is legal.
func NewBytes[V any]() *Table[[]byte, V] {
	tree, err := btree.New(btree.Config[[]byte, V]{
		Compare:    bytes.Compare,
		InvalidKey: func(key []byte) bool { return key == nil },
	})
	assert(err == nil, "NewBytes: cannot create table")
	return &Table[[]byte, V]{tree: tree}
}

// Get returns the value associated with key. The boolean result tells
// whether the key is present; an absent key is not an error.
func (tab *Table[K, V]) Get(key K) (V, bool, error) {
	if tab == nil {
		var zero V
		return zero, false, ErrInvalidConfig
	}
	return tab.tree.Get(key)
}

// Put associates a value with key.
//
// Putting a key which is already present does not overwrite the old value:
// the new pair occupies an additional slot and Size grows, while Get keeps
// returning the value stored first. Clients needing replace semantics must
// check with Contains before putting.
func (tab *Table[K, V]) Put(key K, value V) error {
	if tab == nil {
		return ErrInvalidConfig
	}
	return tab.tree.Put(key, value)
}

// Contains reports whether key is present in the table.
func (tab *Table[K, V]) Contains(key K) (bool, error) {
	if tab == nil {
		return false, ErrInvalidConfig
	}
	_, found, err := tab.tree.Get(key)
	return found, err
}

// Size returns the number of key-value pairs in the table.
func (tab *Table[K, V]) Size() int {
	if tab == nil {
		return 0
	}
	return tab.tree.Size()
}

// Height returns the height of the backing tree (for debugging): the number
// of internal node levels above the key-value level.
func (tab *Table[K, V]) Height() int {
	if tab == nil {
		return 0
	}
	return tab.tree.Height()
}

// IsEmpty reports whether the table has no key-value pairs.
func (tab *Table[K, V]) IsEmpty() bool {
	return tab.Size() == 0
}

// String returns a multi-line structure dump of the backing tree (for
// debugging; the format is not part of the API contract).
func (tab *Table[K, V]) String() string {
	if tab == nil {
		return "<nil table>"
	}
	return tab.tree.String()
}

// Dump writes the String rendering to w, colorized when w is a terminal.
func (tab *Table[K, V]) Dump(w io.Writer) {
	if tab == nil {
		return
	}
	tab.tree.Dump(w)
}

// Dot outputs the backing tree in Graphviz DOT format (for debugging).
func (tab *Table[K, V]) Dot(w io.Writer) {
	if tab == nil {
		return
	}
	tab.tree.Dot(w)
}
