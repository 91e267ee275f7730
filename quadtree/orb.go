package quadtree

import "github.com/paulmach/orb"

// Interop with github.com/paulmach/orb. A Rect maps to the orb.Bound whose Min
// corner is (Left, Top).

// PointOf converts an orb.Point.
func PointOf(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Orb converts p into an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// RectOf converts an orb.Bound.
func RectOf(b orb.Bound) Rect {
	return Rect{
		Left:   b.Min.X(),
		Top:    b.Min.Y(),
		Width:  b.Max.X() - b.Min.X(),
		Height: b.Max.Y() - b.Min.Y(),
	}
}

// Bound converts r into an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.Left, r.Top},
		Max: orb.Point{r.Right(), r.Bottom()},
	}
}

// NewForBound returns an empty tree covering b.
func NewForBound[T comparable](b orb.Bound, cfg Config) (*Tree[T], error) {
	return New[T](RectOf(b), cfg)
}

// InsertOrb is Insert taking an orb.Point.
func (t *Tree[T]) InsertOrb(p orb.Point, val T) error {
	return t.Insert(PointOf(p), val)
}

// QueryBound is QueryRect taking an orb.Bound.
func (t *Tree[T]) QueryBound(b orb.Bound) []T {
	return t.QueryRect(RectOf(b))
}

// RemoveBound is RemoveZone taking an orb.Bound.
func (t *Tree[T]) RemoveBound(b orb.Bound) int {
	return t.RemoveZone(RectOf(b))
}
