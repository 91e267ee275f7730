package quadtree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Tree is a region quadtree mapping positions to payloads of type T.
// Payloads are compared with == by Remove.
type Tree[T comparable] struct {
	root     node[T]
	zone     Rect
	capacity int
}

// New returns an empty tree covering zone.
func New[T comparable](zone Rect, cfg Config) (*Tree[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !zone.valid() {
		return nil, fmt.Errorf("%w: got %+v", ErrZone, zone)
	}

	return &Tree[T]{
		root: node[T]{
			zone:  zone.bounds(),
			depth: cfg.MaxDepth,
		},
		zone:     zone,
		capacity: cfg.Capacity,
	}, nil
}

// NewSized returns an empty tree covering the rectangle spanning from the
// origin to (width, height).
func NewSized[T comparable](width, height float64, cfg Config) (*Tree[T], error) {
	return New[T](Rect{Width: width, Height: height}, cfg)
}

// Insert adds a payload at the given position. Positions outside of the
// covered zone are rejected with ErrOutOfBounds.
func (t *Tree[T]) Insert(pos Point, val T) error {
	if !pos.finite() || !t.root.zone.contains(pos) {
		if debugging() {
			Log.WithFields(logrus.Fields{
				"op": "insert", "pos": pos, "zone": t.zone,
			}).Debug("rejected position")
		}
		return fmt.Errorf("%w: %v not in %+v", ErrOutOfBounds, pos, t.zone)
	}

	t.root.insert(Entry[T]{Pos: pos, Value: val}, t.capacity)

	return nil
}

// InsertEntry is Insert taking a ready entry.
func (t *Tree[T]) InsertEntry(e Entry[T]) error {
	return t.Insert(e.Pos, e.Value)
}

// Size returns the number of stored entries.
func (t *Tree[T]) Size() int {
	return t.root.size
}

// Empty reports whether the tree holds no entries.
func (t *Tree[T]) Empty() bool {
	return t.root.size == 0
}

// Capacity returns the number of entries a leaf holds before it splits.
func (t *Tree[T]) Capacity() int {
	return t.capacity
}

// MaxDepth returns the depth bound the tree was created with.
func (t *Tree[T]) MaxDepth() int {
	return t.root.depth
}

// Zone returns the rectangle covered by the tree.
func (t *Tree[T]) Zone() Rect {
	return t.zone
}

// Clear removes all entries and releases every node but the root.
func (t *Tree[T]) Clear() {
	t.root.clear()
}
