package quadtree

import (
	"github.com/hideo55/go-popcount"
	"github.com/sirupsen/logrus"
)

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes  int // allocated nodes, the root included
	Leaves int // nodes without children
	Depth  int // levels below the root
	Empty  int // child nodes whose subtree holds no entries
}

// ShrinkToFit releases the subtrees left empty by removals and returns the
// number of released nodes. A node whose four children hold no entries turns
// back into a leaf. Calling it again without a mutation in between releases
// nothing.
func (t *Tree[T]) ShrinkToFit() int {
	num := t.root.shrink()

	if num > 0 && debugging() {
		Log.WithFields(logrus.Fields{
			"op": "shrink", "released": num, "nodes": t.root.count(),
		}).Debug("released empty nodes")
	}

	return num
}

// Depth returns the number of levels below the root; 0 for a single leaf.
func (t *Tree[T]) Depth() int {
	return t.root.height()
}

// NodeCount returns the number of allocated nodes, the root included.
func (t *Tree[T]) NodeCount() int {
	return t.root.count()
}

// Stats walks the tree once and reports its shape.
func (t *Tree[T]) Stats() Stats {
	var st Stats
	t.root.stats(&st, 0)
	return st
}

func (n *node[T]) stats(st *Stats, level int) {
	st.Nodes++

	if level > st.Depth {
		st.Depth = level
	}

	if n.children == nil {
		st.Leaves++
		return
	}

	st.Empty += len(n.children) - int(popcount.Count(n.occupied))

	for i := range n.children {
		n.children[i].stats(st, level+1)
	}
}

func (n *node[T]) shrink() (num int) {
	if n.children == nil {
		return 0
	}

	if n.occupied == 0 {
		for i := range n.children {
			num += n.children[i].count()
		}
		n.children = nil
		return num
	}

	for i := range n.children {
		num += n.children[i].shrink()
	}

	return num
}

func (n *node[T]) height() int {
	if n.children == nil {
		return 0
	}

	var deepest int

	for i := range n.children {
		if h := n.children[i].height(); h > deepest {
			deepest = h
		}
	}

	return deepest + 1
}

func (n *node[T]) count() int {
	num := 1

	if n.children != nil {
		for i := range n.children {
			num += n.children[i].count()
		}
	}

	return num
}
