package btree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// String returns a multi-line dump of the tree: the root's keys, then every
// level indented by depth, with external entries shown as "key value" lines.
// The format is for debugging and not part of the API contract.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	t.dump(&sb, plainSprint, plainSprint)
	return sb.String()
}

// Dump writes the String rendering to w, colorizing keys and values when w
// is a terminal.
func (t *Tree[K, V]) Dump(w io.Writer) {
	keyColor := color.New(color.FgCyan)
	valColor := color.New(color.FgGreen)
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		keyColor.DisableColor()
		valColor.DisableColor()
	}
	t.dump(w, keyColor.SprintFunc(), valColor.SprintFunc())
}

func plainSprint(a ...interface{}) string {
	return fmt.Sprint(a...)
}

func (t *Tree[K, V]) dump(w io.Writer, key, val func(a ...interface{}) string) {
	if t == nil || t.root == nil || len(t.root.entries) == 0 {
		io.WriteString(w, "root: <empty>\n")
		return
	}
	io.WriteString(w, "root: ")
	for i, e := range t.root.entries {
		if i > 0 {
			io.WriteString(w, ",")
		}
		io.WriteString(w, key(e.key))
	}
	io.WriteString(w, "\n")
	t.dumpNode(w, t.root, t.height, "", key, val)
}

func (t *Tree[K, V]) dumpNode(w io.Writer, nd *node[K, V], height int, indent string,
	key, val func(a ...interface{}) string) {
	//
	if height == 0 {
		for _, e := range nd.entries {
			fmt.Fprintf(w, "%s%s %s\n", indent, key(e.key), val(e.val))
		}
		return
	}
	for j, e := range nd.entries {
		if j > 0 {
			fmt.Fprintf(w, "%s(%s)\n", indent, key(e.key))
		}
		t.dumpNode(w, e.child, height-1, indent+"     ", key, val)
	}
}

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(nd *node[K, V]) int {
	return ids.idTable[nd]
}

func (ids *nodeids[K, V]) alloc(nd *node[K, V]) int {
	if id := ids.find(nd); id > 0 {
		return id
	}
	ids.idTable[nd] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := newtable[K, V]()
		t.dotNode(w, &ids, t.root, t.height)
	}
	io.WriteString(w, "}\n")
}

func (t *Tree[K, V]) dotNode(w io.Writer, ids *nodeids[K, V], nd *node[K, V], height int) {
	id := ids.alloc(nd)
	var label strings.Builder
	if height == 0 {
		for i, e := range nd.entries {
			if i > 0 {
				label.WriteString("|")
			}
			fmt.Fprintf(&label, "%v=%v", e.key, e.val)
		}
		fmt.Fprintf(w, "\t\"%d\" [shape=record,label=\"%s\"];\n", id, label.String())
		return
	}
	for i, e := range nd.entries {
		if i > 0 {
			label.WriteString("|")
		}
		fmt.Fprintf(&label, "%v", e.key)
	}
	fmt.Fprintf(w, "\t\"%d\" [shape=Mrecord,label=\"%s\"];\n", id, label.String())
	for _, e := range nd.entries {
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, ids.alloc(e.child))
		t.dotNode(w, ids, e.child, height-1)
	}
}
