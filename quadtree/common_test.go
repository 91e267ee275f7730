package quadtree

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

const (
	testSeed = 1234567890
	testSize = 1000
)

var testZone = Rect{Width: testSize, Height: testSize}

func newTestTree(t testing.TB, capacity, maxDepth int) *Tree[int] {
	tree, err := New[int](testZone, Config{Capacity: capacity, MaxDepth: maxDepth})
	require.NoError(t, err)
	return tree
}

// fakePoints returns total positions spread over testZone.
func fakePoints(fake *gofakeit.Faker, total int) []Point {
	points := make([]Point, total)

	for i := range points {
		points[i] = Point{
			X: fake.Float64Range(0, testSize),
			Y: fake.Float64Range(0, testSize),
		}
	}

	return points
}

// fakeRect returns a rectangle inside testZone.
func fakeRect(fake *gofakeit.Faker) Rect {
	var (
		x = fake.Float64Range(0, testSize)
		y = fake.Float64Range(0, testSize)
	)

	return Rect{
		Left:   x,
		Top:    y,
		Width:  fake.Float64Range(0, testSize-x),
		Height: fake.Float64Range(0, testSize-y),
	}
}

// fillTree inserts the points using their indexes as payloads.
func fillTree(t testing.TB, tree *Tree[int], points []Point) {
	for i, p := range points {
		require.NoError(t, tree.Insert(p, i))
	}
}

// bruteQuery filters points through orb.Bound.Contains.
func bruteQuery(points []Point, zone Rect) []int {
	var (
		bound = zone.Bound()
		res   []int
	)

	for i, p := range points {
		if bound.Contains(orb.Point{p.X, p.Y}) {
			res = append(res, i)
		}
	}

	return res
}

// checkNode verifies the structural invariants of a subtree.
func checkNode[T comparable](t *testing.T, n *node[T], capacity int) {
	t.Helper()

	size := len(n.entries)

	for _, e := range n.entries {
		require.True(t, n.zone.contains(e.Pos), "%v is outside of %+v", e.Pos, n.zone)
	}

	if n.depth != 0 {
		require.LessOrEqual(t, len(n.entries), capacity)
	}

	if n.children == nil {
		require.Zero(t, n.occupied, "a leaf has occupied quadrants")
	} else {
		require.NotEqual(t, 0, n.depth, "a node with no depth budget has split")

		zones := n.zone.quarter()

		for i := range n.children {
			child := &n.children[i]

			require.Equal(t, zones[i], child.zone)
			require.Equal(t, child.size > 0, n.hasEntries(i), "occupancy of quadrant %d", i)

			if n.depth > 0 {
				require.Equal(t, n.depth-1, child.depth)
			} else {
				require.Equal(t, Unlimited, child.depth)
			}

			checkNode(t, child, capacity)
			size += child.size
		}
	}

	require.Equal(t, size, n.size, "cached size of %+v", n.zone)
}
