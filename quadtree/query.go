package quadtree

// Query returns the payloads positioned inside the rectangle anchored at
// (x, y), border included. The order of the result is unspecified.
func (t *Tree[T]) Query(x, y, width, height float64) []T {
	return t.QueryRect(NewRect(x, y, width, height))
}

// QueryRect returns the payloads positioned inside zone, border included.
func (t *Tree[T]) QueryRect(zone Rect) []T {
	var res []T

	t.root.query(zone.bounds(), func(e Entry[T]) bool {
		res = append(res, e.Value)
		return true
	})

	return res
}

// QueryEntries is QueryRect returning whole entries.
func (t *Tree[T]) QueryEntries(zone Rect) []Entry[T] {
	var res []Entry[T]

	t.root.query(zone.bounds(), func(e Entry[T]) bool {
		res = append(res, e)
		return true
	})

	return res
}

// QueryFunc calls a handler for every entry inside zone.
// It returns whether all matching entries were visited.
// The handler can continue the process by returning true or abort with false.
func (t *Tree[T]) QueryFunc(zone Rect, handler func(Entry[T]) bool) bool {
	return t.root.query(zone.bounds(), handler)
}

// Data returns all stored payloads in an unspecified order.
func (t *Tree[T]) Data() []T {
	res := make([]T, 0, t.root.size)

	t.root.iterate(func(e Entry[T]) bool {
		res = append(res, e.Value)
		return true
	})

	return res
}

// NodeData returns all stored entries in an unspecified order.
func (t *Tree[T]) NodeData() []Entry[T] {
	res := make([]Entry[T], 0, t.root.size)

	t.root.iterate(func(e Entry[T]) bool {
		res = append(res, e)
		return true
	})

	return res
}

// Iter calls a handler for every stored entry.
// It returns whether all entries were iterated.
func (t *Tree[T]) Iter(handler func(Entry[T]) bool) bool {
	return t.root.iterate(handler)
}

// query visits entries inside zone: the node's own entries first, then its
// children. Subtrees not touching zone are skipped.
func (n *node[T]) query(zone bounds, h func(Entry[T]) bool) bool {
	if n.size == 0 || !zone.intersects(n.zone) {
		return true
	}

	// a zone covering the whole node needs no per-entry test
	if zone.covers(n.zone) {
		return n.iterate(h)
	}

	for _, e := range n.entries {
		if zone.contains(e.Pos) && !h(e) {
			return false
		}
	}

	if n.children != nil {
		for i := range n.children {
			if n.hasEntries(i) && !n.children[i].query(zone, h) {
				return false
			}
		}
	}

	return true
}

// iterate calls the handler for every entry of the subtree unless aborted.
func (n *node[T]) iterate(h func(Entry[T]) bool) bool {
	for _, e := range n.entries {
		if !h(e) {
			return false
		}
	}

	if n.children != nil {
		for i := range n.children {
			if n.hasEntries(i) && !n.children[i].iterate(h) {
				return false
			}
		}
	}

	return true
}
