package quadtree

import (
	"math"
	"strconv"
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Rect is an axis-aligned rectangle given by its top-left corner and its size.
// Y grows downwards, so Top is the smallest Y covered.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewRect returns a rectangle anchored at (x, y). A negative width or height
// extends the rectangle to the left or upwards instead.
func NewRect(x, y, width, height float64) Rect {
	if width < 0 {
		x, width = x+width, -width
	}
	if height < 0 {
		y, height = y+height, -height
	}
	return Rect{Left: x, Top: y, Width: width, Height: height}
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the crossing point of the two midlines.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// Intersects reports whether r and o share at least one point.
// Rectangles touching along an edge do intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left <= o.Right() && o.Left <= r.Right() &&
		r.Top <= o.Bottom() && o.Top <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right() <= r.Right() &&
		o.Top >= r.Top && o.Bottom() <= r.Bottom()
}

func (r Rect) valid() bool {
	for _, v := range [...]float64{r.Left, r.Top, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width >= 0 && r.Height >= 0
}

func (r Rect) bounds() bounds {
	return bounds{minX: r.Left, minY: r.Top, maxX: r.Right(), maxY: r.Bottom()}
}

// bounds is a rectangle kept as its four edges. Node zones use it so that
// siblings share their midlines and the parent's edges bit for bit.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
}

// rect converts b back for display.
func (b bounds) rect() Rect {
	return Rect{Left: b.minX, Top: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}

func (b bounds) contains(p Point) bool {
	return p.X >= b.minX && p.X <= b.maxX && p.Y >= b.minY && p.Y <= b.maxY
}

func (b bounds) intersects(o bounds) bool {
	return b.minX <= o.maxX && o.minX <= b.maxX && b.minY <= o.maxY && o.minY <= b.maxY
}

// covers reports whether o lies entirely inside b.
func (b bounds) covers(o bounds) bool {
	return o.minX >= b.minX && o.maxX <= b.maxX && o.minY >= b.minY && o.maxY <= b.maxY
}

// mid never leaves [min, max] and never overflows.
func (b bounds) mid() Point {
	return Point{X: b.minX/2 + b.maxX/2, Y: b.minY/2 + b.maxY/2}
}

// quarter returns the zones of the NW, NE, SW and SE quadrants of b.
func (b bounds) quarter() [4]bounds {
	m := b.mid()
	return [4]bounds{
		nw: {minX: b.minX, minY: b.minY, maxX: m.X, maxY: m.Y},
		ne: {minX: m.X, minY: b.minY, maxX: b.maxX, maxY: m.Y},
		sw: {minX: b.minX, minY: m.Y, maxX: m.X, maxY: b.maxY},
		se: {minX: m.X, minY: m.Y, maxX: b.maxX, maxY: b.maxY},
	}
}

// quadrant of b that owns p; a point on a midline goes north and west.
func (b bounds) quadrant(p Point) int {
	m := b.mid()
	q := nw
	if p.X > m.X {
		q |= ne
	}
	if p.Y > m.Y {
		q |= sw
	}
	return q
}
