package btree

const (
	// Fanout is the fixed maximum number of entries per node.
	// It must be even and greater than 2.
	Fanout = 4
	// halfFanout is the occupancy of each half after a node split, and the
	// minimum occupancy of every non-root node.
	halfFanout = Fanout / 2
)

// entry is one slot of a node. Entries of internal nodes use key and child,
// entries of external nodes use key and val. Which of the two applies is not
// tagged per entry; it follows from the depth of the owning node (see the
// height parameter threaded through search and insert).
//
// For internal entries, key is the minimum key in the subtree behind child.
type entry[K, V any] struct {
	key   K
	val   V
	child *node[K, V]
}

type node[K, V any] struct {
	// n is the logical entry count; valid entries are entryStore[:n].
	n uint8
	// entryStore is the fixed backing storage for entries.
	entryStore [Fanout]entry[K, V]
	// entries is a dynamic-length view over entryStore and must satisfy:
	// len(entries) == int(n), cap(entries) == len(entryStore).
	entries []entry[K, V]
}

// makeNode materializes a node backed by fixed inline storage.
func makeNode[K, V any](entries ...entry[K, V]) *node[K, V] {
	nd := &node[K, V]{}
	assert(len(entries) <= len(nd.entryStore), "makeNode exceeds fixed node capacity")
	copy(nd.entryStore[:], entries)
	nd.n = uint8(len(entries))
	nd.entries = nd.entryStore[:len(entries)]
	return nd
}

// insertEntryAt shifts entries right and places e at idx.
func (nd *node[K, V]) insertEntryAt(idx int, e entry[K, V]) {
	n := len(nd.entries)
	assert(idx >= 0 && idx <= n, "insertEntryAt index out of range")
	assert(n < len(nd.entryStore), "insertEntryAt exceeds fixed node capacity")
	if idx < n {
		copy(nd.entryStore[idx+1:n+1], nd.entryStore[idx:n])
	}
	nd.entryStore[idx] = e
	nd.n = uint8(n + 1)
	nd.entries = nd.entryStore[:n+1]
}

// split moves the upper half of a full node into a fresh right sibling and
// truncates the receiver to the lower half. Stale slots are zeroed so the
// node does not pin subtrees it no longer owns.
func (nd *node[K, V]) split() *node[K, V] {
	assert(len(nd.entries) == Fanout, "split called on a non-full node")
	sibling := makeNode(nd.entryStore[halfFanout:Fanout]...)
	var zero entry[K, V]
	for i := halfFanout; i < Fanout; i++ {
		nd.entryStore[i] = zero
	}
	nd.n = halfFanout
	nd.entries = nd.entryStore[:halfFanout]
	return sibling
}
