package btree

import (
	"fmt"
)

// Tree is an ordered key-value index over fixed-fanout multiway nodes.
//
// A tree exclusively owns its root, and every node exclusively owns the
// subtrees behind its entries; there are no back or sibling references.
// Operations assume sequential access: callers that share a tree across
// goroutines must synchronize externally.
type Tree[K, V any] struct {
	cfg    Config[K, V]
	root   *node[K, V]
	height int // number of internal levels above the external level
	size   int // key-value pairs stored in external nodes
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg, root: makeNode[K, V]()}, nil
}

// IsEmpty reports whether the tree has no key-value pairs.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// Size returns the number of key-value pairs in the tree.
func (t *Tree[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of internal levels above the external level.
// A tree whose root is itself external has height 0.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Get returns the value associated with key, and whether the key is present.
// An absent key is not an error; Get fails only for keys rejected by the
// configured validity hook.
func (t *Tree[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if t == nil {
		return zero, false, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.checkKey(key); err != nil {
		return zero, false, err
	}
	val, found := t.search(t.root, key, t.height)
	return val, found, nil
}

// Put inserts the key-value pair. Keys already present are not overwritten:
// the pair occupies a fresh slot and the size counter grows, while lookups
// keep returning the value stored first. This duplicate-tolerant behavior is
// deliberate; see the package tests for the exact contract.
func (t *Tree[K, V]) Put(key K, val V) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.checkKey(key); err != nil {
		return err
	}
	sibling := t.insert(t.root, key, val, t.height)
	t.size++
	if sibling == nil {
		return nil
	}
	// the root itself split: grow a new root above the two halves
	grown := makeNode(
		entry[K, V]{key: t.root.entries[0].key, child: t.root},
		entry[K, V]{key: sibling.entries[0].key, child: sibling},
	)
	t.root = grown
	t.height++
	T().Debugf("btree: root split, height is now %d", t.height)
	return nil
}

func (t *Tree[K, V]) checkKey(key K) error {
	if t.cfg.InvalidKey != nil && t.cfg.InvalidKey(key) {
		return fmt.Errorf("%w: key rejected by validity check", ErrInvalidKey)
	}
	return nil
}

// search descends from nd to the external level and scans it for key.
//
// At internal levels the descent picks the rightmost entry whose key is not
// greater than the search key: scan forward and stop at the entry before the
// first one with a strictly greater key, or at the last entry.
func (t *Tree[K, V]) search(nd *node[K, V], key K, height int) (V, bool) {
	assert(nd != nil, "search called with nil node")
	if height == 0 {
		for _, e := range nd.entries {
			if t.cfg.Compare(key, e.key) == 0 {
				return e.val, true
			}
		}
	} else {
		for j, e := range nd.entries {
			if j+1 == len(nd.entries) || t.cfg.Compare(key, nd.entries[j+1].key) < 0 {
				return t.search(e.child, key, height-1)
			}
		}
	}
	var zero V
	return zero, false
}

// insert descends to the external level, inserts the pair in sorted position
// and repairs overflow bottom-up. A non-nil return value is the newly created
// right sibling of nd, which the caller must link into its own entries.
func (t *Tree[K, V]) insert(nd *node[K, V], key K, val V, height int) *node[K, V] {
	assert(nd != nil, "insert called with nil node")
	var idx int
	e := entry[K, V]{key: key, val: val}

	if height == 0 {
		// external node: position before the first strictly greater key
		for idx = 0; idx < len(nd.entries); idx++ {
			if t.cfg.Compare(key, nd.entries[idx].key) < 0 {
				break
			}
		}
	} else {
		// A key below the current subtree minimum descends through the
		// leftmost entry at every level; refresh that entry's guard key so
		// it stays the minimum of the subtree it guards.
		if t.cfg.Compare(key, nd.entries[0].key) < 0 {
			nd.entries[0].key = key
		}
		// internal node: descend, then link a promoted sibling if one
		// comes back up
		for idx = 0; idx < len(nd.entries); idx++ {
			if idx+1 == len(nd.entries) || t.cfg.Compare(key, nd.entries[idx+1].key) < 0 {
				sibling := t.insert(nd.entries[idx].child, key, val, height-1)
				idx++
				if sibling == nil {
					return nil
				}
				e = entry[K, V]{key: sibling.entries[0].key, child: sibling}
				break
			}
		}
	}

	nd.insertEntryAt(idx, e)
	if len(nd.entries) < Fanout {
		return nil
	}
	T().Debugf("btree: node at height %d is full, splitting", height)
	return nd.split()
}
