package btree

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func newIntTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree, err := New(Config[int, string]{Compare: compareInts})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func mustPut(t *testing.T, tree *Tree[int, string], key int, val string) {
	t.Helper()
	if err := tree.Put(key, val); err != nil {
		t.Fatalf("Put(%d) failed: %v", key, err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated after Put(%d): %v", key, err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, string]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing compare function, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tree.Size() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state size=%d height=%d", tree.Size(), tree.Height())
	}
	for _, key := range []int{0, 1, -7, 1000} {
		_, found, err := tree.Get(key)
		if err != nil {
			t.Fatalf("Get(%d) on empty tree failed: %v", key, err)
		}
		if found {
			t.Fatalf("Get(%d) on empty tree reported a value", key)
		}
	}
}

func TestInvalidKeyRejected(t *testing.T) {
	tree, err := New(Config[int, string]{
		Compare:    compareInts,
		InvalidKey: func(key int) bool { return key < 0 },
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tree.Put(-1, "nope"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey from Put, got %v", err)
	}
	if tree.Size() != 0 {
		t.Fatalf("rejected Put must not change size, size=%d", tree.Size())
	}
	if _, _, err := tree.Get(-1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey from Get, got %v", err)
	}
}

func TestSequentialInsert(t *testing.T) {
	tree := newIntTree(t)
	for key := 1; key <= 10; key++ {
		mustPut(t, tree, key, strconv.Itoa(key))
		if tree.Size() != key {
			t.Fatalf("size=%d after %d puts", tree.Size(), key)
		}
		// fanout 4: the 4th put fills the root and forces the first
		// split, the 8th fills the root again and forces a second level
		switch key {
		case Fanout:
			if tree.Height() != 1 {
				t.Fatalf("height=%d after %d puts, want 1", tree.Height(), key)
			}
		case 2 * Fanout:
			if tree.Height() != 2 {
				t.Fatalf("height=%d after %d puts, want 2", tree.Height(), key)
			}
		}
	}
	if tree.Height() != 2 {
		t.Fatalf("height=%d after 10 sequential puts, want 2", tree.Height())
	}
	for key := 1; key <= 10; key++ {
		val, found, err := tree.Get(key)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", key, err)
		}
		if !found || val != strconv.Itoa(key) {
			t.Fatalf("Get(%d) = (%q, %v), want (%q, true)", key, val, found, strconv.Itoa(key))
		}
	}
	if _, found, _ := tree.Get(11); found {
		t.Fatalf("Get(11) reported a value for a key never put")
	}
}

func TestRootGrowthRaisesHeightByOne(t *testing.T) {
	tree := newIntTree(t)
	prev := tree.Height()
	for key := 1; key <= 64; key++ {
		mustPut(t, tree, key, "v")
		h := tree.Height()
		if h < prev {
			t.Fatalf("height decreased from %d to %d at key %d", prev, h, key)
		}
		if h > prev+1 {
			t.Fatalf("height jumped from %d to %d at key %d", prev, h, key)
		}
		prev = h
	}
	if prev < 2 {
		t.Fatalf("expected at least two levels of splitting, height=%d", prev)
	}
}

func TestFirstSplitShape(t *testing.T) {
	tree := newIntTree(t)
	for key := 1; key <= Fanout; key++ {
		mustPut(t, tree, key, "v")
	}
	if tree.Height() != 1 {
		t.Fatalf("height=%d after filling the root, want 1", tree.Height())
	}
	if len(tree.root.entries) != 2 {
		t.Fatalf("grown root holds %d entries, want 2", len(tree.root.entries))
	}
	for i, e := range tree.root.entries {
		if len(e.child.entries) != halfFanout {
			t.Fatalf("split half %d holds %d entries, want %d",
				i, len(e.child.entries), halfFanout)
		}
	}
}

// Descending inserts route every new minimum through the leftmost entry of
// each internal node; those guard keys must follow the shrinking subtree
// minimum, or they go stale after the first split.
func TestLeftmostGuardKeyTracksMinimum(t *testing.T) {
	tree := newIntTree(t)
	for _, key := range []int{40, 39, 38, 37} {
		mustPut(t, tree, key, "v")
	}
	if tree.Height() != 1 {
		t.Fatalf("height=%d after filling the root, want 1", tree.Height())
	}
	mustPut(t, tree, 36, "v") // mustPut runs Check after the put
	if tree.root.entries[0].key != 36 {
		t.Fatalf("leftmost guard key = %d, want 36", tree.root.entries[0].key)
	}
}

func TestReverseInsert(t *testing.T) {
	tree := newIntTree(t)
	for key := 40; key >= 1; key-- {
		mustPut(t, tree, key, strconv.Itoa(key))
	}
	if tree.Size() != 40 {
		t.Fatalf("size=%d, want 40", tree.Size())
	}
	for key := 1; key <= 40; key++ {
		val, found, err := tree.Get(key)
		if err != nil || !found || val != strconv.Itoa(key) {
			t.Fatalf("Get(%d) = (%q, %v, %v)", key, val, found, err)
		}
	}
}

// Duplicate puts are tolerated and documented rather than deduplicated: the
// pair occupies a fresh slot, the size counter grows unconditionally, and
// lookups keep returning the value stored first. Note that duplicates step
// outside the sorted-strictly-ascending contract Check verifies, so this
// test inspects behavior without it.
func TestDuplicateKeyBehavior(t *testing.T) {
	tree := newIntTree(t)
	mustPut(t, tree, 7, "first")
	if err := tree.Put(7, "second"); err != nil {
		t.Fatalf("duplicate Put failed: %v", err)
	}
	if tree.Size() != 2 {
		t.Fatalf("size=%d after duplicate put, want 2", tree.Size())
	}
	val, found, err := tree.Get(7)
	if err != nil || !found {
		t.Fatalf("Get(7) = (%q, %v, %v)", val, found, err)
	}
	if val != "first" {
		t.Fatalf("Get(7) = %q, want the first stored value", val)
	}
}

func TestStringDump(t *testing.T) {
	tree := newIntTree(t)
	if !strings.Contains(tree.String(), "<empty>") {
		t.Fatalf("empty tree dump = %q", tree.String())
	}
	for key := 1; key <= 6; key++ {
		mustPut(t, tree, key, "v"+strconv.Itoa(key))
	}
	dump := tree.String()
	if !strings.HasPrefix(dump, "root: ") {
		t.Fatalf("dump does not start with root line:\n%s", dump)
	}
	for key := 1; key <= 6; key++ {
		if !strings.Contains(dump, "v"+strconv.Itoa(key)) {
			t.Fatalf("dump misses value of key %d:\n%s", key, dump)
		}
	}
}

func TestDumpWriterMatchesString(t *testing.T) {
	tree := newIntTree(t)
	for key := 1; key <= 9; key++ {
		mustPut(t, tree, key, strconv.Itoa(key))
	}
	var sb strings.Builder
	tree.Dump(&sb) // non-terminal writer: no color escapes
	if sb.String() != tree.String() {
		t.Fatalf("Dump output differs from String:\n%q\n%q", sb.String(), tree.String())
	}
}

func TestDotDump(t *testing.T) {
	tree := newIntTree(t)
	for key := 1; key <= 10; key++ {
		mustPut(t, tree, key, strconv.Itoa(key))
	}
	var sb strings.Builder
	tree.Dot(&sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Fatalf("unexpected DOT preamble:\n%s", dot)
	}
	if !strings.Contains(dot, "->") {
		t.Fatalf("DOT dump of a split tree has no edges:\n%s", dot)
	}
}
