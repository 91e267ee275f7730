package quadtree

import (
	"fmt"
	"io"
	"strings"
)

var quadrantNames = [4]string{nw: "NW", ne: "NE", sw: "SW", se: "SE"}

// DebugDump writes an indented outline of the tree: one line per node with
// its zone, aggregate size and own entries.
func (t *Tree[T]) DebugDump(w io.Writer) error {
	return t.root.dump(w, "ROOT", 0)
}

func (n *node[T]) dump(w io.Writer, name string, level int) error {
	indent := strings.Repeat("  ", level)

	_, err := fmt.Fprintf(w, "%s%s zone=%+v size=%d depth=%d\n", indent, name, n.zone.rect(), n.size, n.depth)
	if err != nil {
		return err
	}

	for _, e := range n.entries {
		if _, err = fmt.Fprintf(w, "%s  - %v: %v\n", indent, e.Pos, e.Value); err != nil {
			return err
		}
	}

	if n.children == nil {
		return nil
	}

	for i := range n.children {
		if err = n.children[i].dump(w, quadrantNames[i], level+1); err != nil {
			return err
		}
	}

	return nil
}
