package quadtree

import "github.com/sirupsen/logrus"

// quadrant indexes; bit 0 selects east, bit 1 selects south
const (
	nw = 0
	ne = 1
	sw = 2
	se = 3
)

// Entry is a stored payload together with its position.
type Entry[T any] struct {
	Pos   Point
	Value T
}

type node[T comparable] struct {
	zone bounds
	// entries held by this node itself, in insertion order
	entries []Entry[T]
	// nil for a leaf; all four quadrants come in a single allocation
	children *[4]node[T]
	// bitmap of the children holding at least one entry, bit i for quadrant i
	occupied uint64
	// number of entries in this node and all of its descendants
	size int
	// remaining split budget: 0 forbids splitting, Unlimited means no bound
	depth int
}

func (n *node[T]) isLeaf() bool {
	return n.children == nil
}

// insert stores e in n or in the descendant owning e.Pos.
// The position is expected to lie inside n.zone.
func (n *node[T]) insert(e Entry[T], capacity int) {
	cur := n

	for {
		cur.size++

		if (cur.isLeaf() && len(cur.entries) < capacity) || cur.depth == 0 {
			cur.entries = append(cur.entries, e)
			return
		}

		if cur.isLeaf() {
			cur.subdivide()
		}

		q := cur.zone.quadrant(e.Pos)
		cur.occupied |= 1 << q
		cur = &cur.children[q]
	}
}

// subdivide turns a leaf into an inner node with four empty children.
// Entries already held by the node stay where they are.
func (n *node[T]) subdivide() {
	var (
		zones = n.zone.quarter()
		depth = Unlimited
	)

	if n.depth > 0 {
		depth = n.depth - 1
	}

	n.children = &[4]node[T]{}

	for i := range n.children {
		n.children[i].zone = zones[i]
		n.children[i].depth = depth
	}

	if debugging() {
		Log.WithFields(logrus.Fields{
			"op": "subdivide", "zone": n.zone.rect(), "entries": len(n.entries), "depth": depth,
		}).Debug("split node into quadrants")
	}
}

// clear drops every entry and every descendant.
func (n *node[T]) clear() {
	n.entries = nil
	n.children = nil
	n.occupied = 0
	n.size = 0
}

func (n *node[T]) hasEntries(q int) bool {
	return n.occupied&(1<<q) != 0
}

// settle clears the occupancy bit of quadrant q once it holds nothing.
func (n *node[T]) settle(q int) {
	if n.children[q].size == 0 {
		n.occupied &^= 1 << q
	}
}
