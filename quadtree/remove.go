package quadtree

import "github.com/sirupsen/logrus"

// Remove deletes the first entry holding val and reports whether one was found.
// Entries of a node are checked before its children, children are checked in
// the NW, NE, SW, SE order. Equal duplicates after the first one are kept.
func (t *Tree[T]) Remove(val T) bool {
	return t.root.removeFirst(func(e Entry[T]) bool {
		return e.Value == val
	})
}

// RemoveFunc deletes the first entry accepted by match, in the same order as
// Remove does, and reports whether one was found.
func (t *Tree[T]) RemoveFunc(match func(Entry[T]) bool) bool {
	return t.root.removeFirst(match)
}

// RemoveZone deletes every entry positioned inside zone, border included, and
// returns the number of deleted entries. Emptied nodes are kept until
// ShrinkToFit is called.
func (t *Tree[T]) RemoveZone(zone Rect) int {
	num := t.root.removeZone(zone.bounds())

	if num > 0 && debugging() {
		Log.WithFields(logrus.Fields{
			"op": "remove-zone", "zone": zone, "removed": num, "left": t.root.size,
		}).Debug("removed entries")
	}

	return num
}

func (n *node[T]) removeFirst(match func(Entry[T]) bool) bool {
	if n.size == 0 {
		return false
	}

	for i, e := range n.entries {
		if match(e) {
			n.entries = deleteAt(n.entries, i)
			n.size--
			return true
		}
	}

	if n.children != nil {
		for i := range n.children {
			if n.hasEntries(i) && n.children[i].removeFirst(match) {
				n.settle(i)
				n.size--
				return true
			}
		}
	}

	return false
}

func (n *node[T]) removeZone(zone bounds) int {
	if n.size == 0 || !zone.intersects(n.zone) {
		return 0
	}

	// filter in place keeping the insertion order
	var (
		kept = n.entries[:0]
		num  int
	)

	for _, e := range n.entries {
		if zone.contains(e.Pos) {
			num++
			continue
		}
		kept = append(kept, e)
	}

	var zero Entry[T]

	for i := len(kept); i < len(n.entries); i++ {
		n.entries[i] = zero // do not pin removed payloads
	}

	n.entries = kept

	if n.children != nil {
		for i := range n.children {
			if n.hasEntries(i) {
				num += n.children[i].removeZone(zone)
				n.settle(i)
			}
		}
	}

	n.size -= num

	return num
}

func deleteAt[T any](s []T, i int) []T {
	var zero T

	copy(s[i:], s[i+1:])
	s[len(s)-1] = zero

	return s[:len(s)-1]
}
