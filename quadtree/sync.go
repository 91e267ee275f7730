package quadtree

import "sync"

// Locked guards a Tree with a read-write mutex so that it can be shared
// between goroutines. Queries run concurrently, mutations run exclusively.
type Locked[T comparable] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

// NewLocked returns an empty guarded tree covering zone.
func NewLocked[T comparable](zone Rect, cfg Config) (*Locked[T], error) {
	tree, err := New[T](zone, cfg)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{tree: tree}, nil
}

// Insert is Tree.Insert under the write lock.
func (l *Locked[T]) Insert(pos Point, val T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(pos, val)
}

// Remove is Tree.Remove under the write lock.
func (l *Locked[T]) Remove(val T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Remove(val)
}

// RemoveZone is Tree.RemoveZone under the write lock.
func (l *Locked[T]) RemoveZone(zone Rect) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.RemoveZone(zone)
}

// ShrinkToFit is Tree.ShrinkToFit under the write lock.
func (l *Locked[T]) ShrinkToFit() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.ShrinkToFit()
}

// Clear is Tree.Clear under the write lock.
func (l *Locked[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Clear()
}

// QueryRect is Tree.QueryRect under the read lock.
func (l *Locked[T]) QueryRect(zone Rect) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.QueryRect(zone)
}

// Data returns a snapshot of all stored payloads.
func (l *Locked[T]) Data() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Data()
}

// Size returns the number of stored entries.
func (l *Locked[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Size()
}

// Depth returns the number of levels below the root.
func (l *Locked[T]) Depth() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Depth()
}

// NodeCount returns the number of allocated nodes.
func (l *Locked[T]) NodeCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.NodeCount()
}

// Stats is Tree.Stats under the read lock.
func (l *Locked[T]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Stats()
}

// View runs fn with shared access to the underlying tree. fn must not mutate
// the tree nor retain it.
func (l *Locked[T]) View(fn func(*Tree[T])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.tree)
}
