package btree

import "fmt"

// Check validates structural tree invariants:
//   - occupancy bounds per node (non-root nodes hold at least halfFanout
//     entries, no node holds more than Fanout),
//   - strictly ascending keys within every node,
//   - internal entry keys equal to the minimum key of their subtree,
//   - all external nodes at depth equal to the tree height,
//   - size counter equal to the number of external entries.
//
// This checker is intentionally strict and meant for use in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidConfig)
	}
	if t.height < 0 {
		return fmt.Errorf("%w: negative height", ErrInvalidConfig)
	}
	pairs, err := t.checkNode(t.root, t.height, true)
	if err != nil {
		return err
	}
	if pairs != t.size {
		return fmt.Errorf("%w: size counter mismatch (%d != %d)", ErrInvalidConfig, t.size, pairs)
	}
	return nil
}

func (t *Tree[K, V]) checkNode(nd *node[K, V], height int, isRoot bool) (pairs int, err error) {
	if nd == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if len(nd.entries) != int(nd.n) {
		return 0, fmt.Errorf("%w: occupancy count %d disagrees with view length %d",
			ErrInvalidConfig, nd.n, len(nd.entries))
	}
	if len(nd.entries) > Fanout {
		return 0, fmt.Errorf("%w: occupancy %d exceeds fanout %d",
			ErrInvalidConfig, len(nd.entries), Fanout)
	}
	if !isRoot && len(nd.entries) < halfFanout {
		return 0, fmt.Errorf("%w: non-root occupancy %d below %d",
			ErrInvalidConfig, len(nd.entries), halfFanout)
	}
	for i := 1; i < len(nd.entries); i++ {
		if t.cfg.Compare(nd.entries[i-1].key, nd.entries[i].key) >= 0 {
			return 0, fmt.Errorf("%w: entries not strictly ascending at slot %d",
				ErrInvalidConfig, i)
		}
	}
	if height == 0 {
		for i, e := range nd.entries {
			if e.child != nil {
				return 0, fmt.Errorf("%w: external entry %d holds a child reference",
					ErrInvalidConfig, i)
			}
		}
		return len(nd.entries), nil
	}
	for i, e := range nd.entries {
		if e.child == nil {
			return 0, fmt.Errorf("%w: internal entry %d has no child", ErrInvalidConfig, i)
		}
		if len(e.child.entries) == 0 {
			return 0, fmt.Errorf("%w: internal entry %d guards an empty child",
				ErrInvalidConfig, i)
		}
		if t.cfg.Compare(e.key, e.child.entries[0].key) != 0 {
			return 0, fmt.Errorf("%w: internal entry %d key differs from subtree minimum",
				ErrInvalidConfig, i)
		}
		childPairs, childErr := t.checkNode(e.child, height-1, false)
		if childErr != nil {
			return 0, childErr
		}
		pairs += childPairs
	}
	return pairs, nil
}
