package main

import (
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aglyzov/go-spatial/quadtree"
)

const (
	width  = 640
	height = 480
)

func addRandoms(tree *quadtree.Tree[quadtree.Point], fake *gofakeit.Faker, count int) {
	for i := 0; i < count; i++ {
		p := quadtree.Point{
			X: float64(fake.Number(0, width-1)),
			Y: float64(fake.Number(0, height-1)),
		}
		if err := tree.Insert(p, p); err != nil {
			fmt.Println(err)
		}
	}
}

func stats(tree *quadtree.Tree[quadtree.Point]) {
	st := tree.Stats()
	fmt.Printf("n : %d\nd : %d\nnodes : %d (%d empty)\n", tree.Size(), st.Depth, st.Nodes, st.Empty)
}

func main() {
	fake := gofakeit.New(42)

	tree, err := quadtree.NewSized[quadtree.Point](width, height, quadtree.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// clicks
	for _, p := range []quadtree.Point{
		{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}, {X: 40, Y: 40}, {X: 50, Y: 50},
	} {
		if err := tree.Insert(p, p); err != nil {
			fmt.Println(err)
		}
	}
	stats(tree)

	if err := tree.Insert(quadtree.Point{X: 700, Y: 10}, quadtree.Point{X: 700, Y: 10}); err != nil {
		fmt.Println("click outside the window:", err)
	}

	addRandoms(tree, fake, 1000)
	stats(tree)

	// right button drag from (400,300) back to (100,100)
	sel := quadtree.NewRect(400, 300, -300, -200)

	fmt.Printf("col : %d\n", len(tree.QueryRect(sel)))
	fmt.Printf("deleted : %d\n", tree.RemoveZone(sel))
	fmt.Printf("col : %d\n", len(tree.QueryRect(sel)))

	fmt.Printf("removed (30,30) : %v\n", tree.Remove(quadtree.Point{X: 30, Y: 30}))
	stats(tree)

	fmt.Println("------")

	tree.RemoveZone(tree.Zone())
	stats(tree)
	fmt.Printf("released : %d\n", tree.ShrinkToFit())
	stats(tree)

	fmt.Println("------")

	addRandoms(tree, fake, 10)
	if err := tree.DebugDump(os.Stdout); err != nil {
		fmt.Println(err)
	}
}
