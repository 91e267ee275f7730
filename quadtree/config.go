package quadtree

import (
	"errors"
	"fmt"
)

const (
	DefaultCapacity = 4
	Unlimited       = -1 // MaxDepth value disabling the depth bound
)

var (
	ErrCapacity    = errors.New("quadtree: capacity must be at least 1")
	ErrDepth       = errors.New("quadtree: max depth must be -1 or greater")
	ErrZone        = errors.New("quadtree: zone must have a finite non-negative size")
	ErrOutOfBounds = errors.New("quadtree: position outside of the covered zone")
)

// Config holds the subdivision policy of a tree.
type Config struct {
	Capacity int // entries a leaf holds before it splits
	MaxDepth int // splits allowed along a path; Unlimited for no bound
}

// DefaultConfig splits leaves past DefaultCapacity entries with no depth bound.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		MaxDepth: Unlimited,
	}
}

// Validate returns ErrCapacity or ErrDepth wrapped with the offending value.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrCapacity, c.Capacity)
	}
	if c.MaxDepth < Unlimited {
		return fmt.Errorf("%w: got %d", ErrDepth, c.MaxDepth)
	}
	return nil
}
