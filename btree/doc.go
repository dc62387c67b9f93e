/*
Package btree implements the tree engine behind symtab: a balanced multiway
tree with a small fixed fanout, keeping key-value pairs sorted and reachable
in logarithmic depth.

The package is intentionally not a full map replacement. It supports point
lookup, insertion with bottom-up split repair, and constant-time size and
height queries. There is no deletion, no iteration and no persistence.

Structure:
  - entries and nodes with fixed inline storage (`entryStore`) and a live
    occupancy count, plus dynamic views over the inline buffers,
  - a tree type owning the root and maintained `size`/`height` counters,
  - recursive guided-descent search and insert, with splits propagated
    upward as promoted sibling nodes,
  - a strict structural invariant checker (`Check`) for tests,
  - debug rendering (text dump, colorized console dump, Graphviz DOT).

Nodes carry no leaf/internal tag; a node is external exactly when it sits at
depth `height` from the root, and the height is threaded through recursion.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
