package quadtree

import (
	"errors"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tree, err := New[string](Rect{Left: -10, Top: -10, Width: 20, Height: 20}, DefaultConfig())

	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Equal(t, 0, tree.Size())
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Depth())
	assert.Equal(t, 1, tree.NodeCount())
	assert.Equal(t, DefaultCapacity, tree.Capacity())
	assert.Equal(t, Unlimited, tree.MaxDepth())
	assert.Empty(t, tree.Data())
}

func TestNewSized(t *testing.T) {
	t.Parallel()

	tree, err := NewSized[int](640, 480, Config{Capacity: 8, MaxDepth: 3})

	require.NoError(t, err)
	assert.Equal(t, Rect{Width: 640, Height: 480}, tree.Zone())
	assert.Equal(t, 8, tree.Capacity())
	assert.Equal(t, 3, tree.MaxDepth())
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name   string
		Zone   Rect
		Config Config
		ExpErr error
	}{
		{"zero capacity", testZone, Config{Capacity: 0, MaxDepth: Unlimited}, ErrCapacity},
		{"negative capacity", testZone, Config{Capacity: -3, MaxDepth: Unlimited}, ErrCapacity},
		{"depth below unlimited", testZone, Config{Capacity: 4, MaxDepth: -2}, ErrDepth},
		{"negative width", Rect{Width: -1, Height: 10}, DefaultConfig(), ErrZone},
		{"negative height", Rect{Width: 10, Height: -1}, DefaultConfig(), ErrZone},
		{"NaN left", Rect{Left: math.NaN(), Width: 10, Height: 10}, DefaultConfig(), ErrZone},
		{"infinite width", Rect{Width: math.Inf(1), Height: 10}, DefaultConfig(), ErrZone},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			tree, err := New[int](tcase.Zone, tcase.Config)

			assert.Nil(t, tree)
			assert.True(t, errors.Is(err, tcase.ExpErr), "unexpected error: %v", err)
		})
	}
}

func TestInsert_OutOfBounds(t *testing.T) {
	t.Parallel()

	tree := newTestTree(t, 4, Unlimited)

	for _, p := range []Point{
		{-1, 10},
		{10, -0.001},
		{1000.5, 10},
		{10, 2000},
		{math.NaN(), 10},
		{math.Inf(1), 10},
	} {
		err := tree.Insert(p, 1)

		assert.True(t, errors.Is(err, ErrOutOfBounds), "%v: unexpected error %v", p, err)
	}

	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 1, tree.NodeCount())

	// the border itself is covered
	for _, p := range []Point{{0, 0}, {1000, 1000}, {0, 1000}, {1000, 0}} {
		assert.NoError(t, tree.Insert(p, 1))
	}

	assert.Equal(t, 4, tree.Size())
}

func TestInsert_SizeAndData(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name     string
		Total    int
		Capacity int
		MaxDepth int
	}{
		{"empty", 0, 4, Unlimited},
		{"single leaf", 3, 4, Unlimited},
		{"cap 4", 5_000, 4, Unlimited},
		{"cap 1", 2_000, 1, Unlimited},
		{"cap 8 depth 3", 5_000, 8, 3},
		{"no split", 500, 2, 0},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			var (
				fake   = gofakeit.New(testSeed)
				points = fakePoints(fake, tcase.Total)
				tree   = newTestTree(t, tcase.Capacity, tcase.MaxDepth)
				exp    = make([]int, tcase.Total)
			)

			for i := range exp {
				exp[i] = i
			}

			fillTree(t, tree, points)

			assert.Equal(t, tcase.Total, tree.Size())
			assert.ElementsMatch(t, exp, tree.Data())
			assert.Len(t, tree.NodeData(), tcase.Total)

			for _, e := range tree.NodeData() {
				assert.Equal(t, points[e.Value], e.Pos)
			}

			if tcase.MaxDepth != Unlimited {
				assert.LessOrEqual(t, tree.Depth(), tcase.MaxDepth)
			}

			checkNode(t, &tree.root, tcase.Capacity)
		})
	}
}

func TestInsert_Subdivides(t *testing.T) {
	t.Parallel()

	tree := newTestTree(t, 4, Unlimited)

	for i, p := range []Point{{10, 10}, {20, 20}, {30, 30}, {40, 40}} {
		require.NoError(t, tree.Insert(p, i))
	}

	assert.True(t, tree.root.isLeaf())
	assert.Equal(t, 0, tree.Depth())

	require.NoError(t, tree.Insert(Point{50, 50}, 4))

	assert.False(t, tree.root.isLeaf())
	assert.GreaterOrEqual(t, tree.Depth(), 1)
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 5, tree.NodeCount())

	// entries held before the split stay in the root
	assert.Len(t, tree.root.entries, 4)
	assert.Equal(t, 1, tree.root.children[nw].size)
	assert.Equal(t, Point{50, 50}, tree.root.children[nw].entries[0].Pos)

	checkNode(t, &tree.root, 4)
}

func TestInsert_InnerNodeTakesNoEntries(t *testing.T) {
	t.Parallel()

	tree := newTestTree(t, 2, Unlimited)

	for i, p := range []Point{{10, 10}, {20, 20}, {30, 30}} {
		require.NoError(t, tree.Insert(p, i))
	}

	require.True(t, tree.Remove(0))
	require.Len(t, tree.root.entries, 1)

	// the root has room again, but it is not a leaf anymore
	require.NoError(t, tree.Insert(Point{900, 900}, 3))

	assert.Len(t, tree.root.entries, 1)
	assert.Equal(t, 1, tree.root.children[se].size)
	checkNode(t, &tree.root, 2)
}

func TestInsert_MidlineIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		P        Point
		Quadrant int
	}{
		{Point{500, 500}, nw},
		{Point{500, 800}, sw},
		{Point{800, 500}, ne},
		{Point{500, 0}, nw},
		{Point{1000, 500}, ne},
	} {
		tcase := tcase

		t.Run(tcase.P.String(), func(t *testing.T) {
			t.Parallel()

			tree := newTestTree(t, 1, 1)

			require.NoError(t, tree.Insert(Point{1, 1}, -1)) // occupies the root

			for i := 0; i < 10; i++ {
				require.NoError(t, tree.Insert(tcase.P, i))
			}

			for q := range tree.root.children {
				if q == tcase.Quadrant {
					assert.Equal(t, 10, tree.root.children[q].size)
				} else {
					assert.Equal(t, 0, tree.root.children[q].size)
				}
			}
		})
	}
}

func TestInsert_MaxDepth(t *testing.T) {
	t.Parallel()

	for _, maxDepth := range []int{0, 1, 2, 5} {
		tree := newTestTree(t, 1, maxDepth)

		// every duplicate opens a new level until the depth budget caps the chain
		for i := 0; i < 50; i++ {
			require.NoError(t, tree.Insert(Point{123, 456}, i))
		}

		assert.Equal(t, 50, tree.Size())
		assert.Equal(t, maxDepth, tree.Depth())
		assert.Equal(t, 1+4*maxDepth, tree.NodeCount())
		checkNode(t, &tree.root, 1)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	var (
		fake = gofakeit.New(testSeed)
		tree = newTestTree(t, 4, Unlimited)
	)

	fillTree(t, tree, fakePoints(fake, 1_000))
	require.Greater(t, tree.NodeCount(), 1)

	tree.Clear()

	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Depth())
	assert.Equal(t, 1, tree.NodeCount())
	assert.Empty(t, tree.Data())
	assert.Equal(t, testZone, tree.Zone())

	// the tree is usable after being cleared
	require.NoError(t, tree.Insert(Point{1, 2}, 7))
	assert.Equal(t, []int{7}, tree.Data())
}

func TestIter_Abort(t *testing.T) {
	t.Parallel()

	var (
		fake = gofakeit.New(testSeed)
		tree = newTestTree(t, 4, Unlimited)
		seen int
	)

	fillTree(t, tree, fakePoints(fake, 100))

	done := tree.Iter(func(Entry[int]) bool {
		seen++
		return seen < 10
	})

	assert.False(t, done)
	assert.Equal(t, 10, seen)

	seen = 0
	assert.True(t, tree.Iter(func(Entry[int]) bool {
		seen++
		return true
	}))
	assert.Equal(t, 100, seen)
}
