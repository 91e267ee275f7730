// Command benchmark compares a plain slice scan, quadtrees of two capacities
// and an R-tree on filling, querying and clearing a random point set.
//
//	go run ./quadtree/benchmark -n 100000 -logtostderr
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/dhconnelly/rtreego"
	"github.com/golang/glog"
	"github.com/sirupsen/logrus"

	"github.com/aglyzov/go-spatial/quadtree"
)

type options struct {
	items    int
	size     float64
	seed     int64
	maxDepth int
	trace    bool
}

func parseFlags() options {
	var opt options

	flag.IntVar(&opt.items, "n", 10_000, "Number of random points.")
	flag.Float64Var(&opt.size, "size", 1000, "Side of the square map the points are spread over.")
	flag.Int64Var(&opt.seed, "seed", time.Now().UnixNano(), "Random seed.")
	flag.IntVar(&opt.maxDepth, "max-depth", quadtree.Unlimited, "Depth bound of the quadtrees, -1 for none.")
	flag.BoolVar(&opt.trace, "trace", false, "Trace quadtree structural changes (very verbose).")

	flag.Parse()

	return opt
}

// rtreePoint makes a point indexable by rtreego.
type rtreePoint struct {
	quadtree.Point
}

func (p *rtreePoint) Bounds() rtreego.Rect {
	return rtreego.Point{p.X, p.Y}.ToRect(1e-9)
}

type contender struct {
	name   string
	fill   func([]quadtree.Point)
	query  func(quadtree.Rect) int
	clear  func()
	report func() string
}

func sliceContender() *contender {
	var points []quadtree.Point

	return &contender{
		name: "slice",
		fill: func(ps []quadtree.Point) {
			points = append(points, ps...)
		},
		query: func(zone quadtree.Rect) (n int) {
			for _, p := range points {
				if zone.Contains(p) {
					n++
				}
			}
			return n
		},
		clear:  func() { points = nil },
		report: func() string { return fmt.Sprintf("len %d", len(points)) },
	}
}

func treeContender(zone quadtree.Rect, capacity, maxDepth int) *contender {
	tree, err := quadtree.New[int](zone, quadtree.Config{Capacity: capacity, MaxDepth: maxDepth})
	if err != nil {
		glog.Exitf("cannot create quadtree: %v", err)
	}

	name := fmt.Sprintf("quadtree%d", capacity)

	return &contender{
		name: name,
		fill: func(ps []quadtree.Point) {
			for i, p := range ps {
				if err := tree.Insert(p, i); err != nil {
					glog.Warningf("%s: %v", name, err)
				}
			}
		},
		query: func(zone quadtree.Rect) int {
			return len(tree.QueryRect(zone))
		},
		clear: tree.Clear,
		report: func() string {
			st := tree.Stats()
			return fmt.Sprintf("size %d, depth %d, nodes %d, empty %d", tree.Size(), st.Depth, st.Nodes, st.Empty)
		},
	}
}

func rtreeContender() *contender {
	tree := rtreego.NewTree(2, 25, 50)

	return &contender{
		name: "rtree",
		fill: func(ps []quadtree.Point) {
			for _, p := range ps {
				tree.Insert(&rtreePoint{p})
			}
		},
		query: func(zone quadtree.Rect) int {
			if zone.Width <= 0 || zone.Height <= 0 {
				return 0
			}
			r, err := rtreego.NewRect(rtreego.Point{zone.Left, zone.Top}, []float64{zone.Width, zone.Height})
			if err != nil {
				glog.Warningf("rtree: %v", err)
				return 0
			}
			return len(tree.SearchIntersect(r))
		},
		clear:  func() { tree = rtreego.NewTree(2, 25, 50) },
		report: func() string { return fmt.Sprintf("size %d", tree.Size()) },
	}
}

func measure(name string, fn func()) {
	start := time.Now()
	fn()
	glog.Infof("\t%-10s : %v", name, time.Since(start))
}

func main() {
	opt := parseFlags()
	defer glog.Flush()

	if opt.trace {
		quadtree.Log.SetLevel(logrus.DebugLevel)
	}

	var (
		fake   = gofakeit.New(opt.seed)
		zone   = quadtree.Rect{Width: opt.size, Height: opt.size}
		points = make([]quadtree.Point, opt.items)
	)

	for i := range points {
		points[i] = quadtree.Point{
			X: float64(fake.Number(0, int(opt.size)-1)),
			Y: float64(fake.Number(0, int(opt.size)-1)),
		}
	}

	contenders := []*contender{
		sliceContender(),
		treeContender(zone, 4, opt.maxDepth),
		treeContender(zone, 8, opt.maxDepth),
		rtreeContender(),
	}

	glog.Infof("%d points over %+v, seed %d", opt.items, zone, opt.seed)

	glog.Info("****** FILLING POINTS *****")
	for _, c := range contenders {
		measure(c.name, func() { c.fill(points) })
		glog.V(1).Infof("\t\t%s", c.report())
	}

	x := float64(fake.Number(0, int(opt.size)-1))
	y := float64(fake.Number(0, int(opt.size)-1))

	for _, q := range []struct {
		title string
		zone  quadtree.Rect
	}{
		{"QUERY WHOLE MAP POINTS", zone},
		{"QUERY RANDOM MAP POINTS", quadtree.Rect{
			Left: x, Top: y,
			Width:  fake.Float64Range(0, opt.size-x),
			Height: fake.Float64Range(0, opt.size-y),
		}},
		{"QUERY HALF MAP POINTS", quadtree.Rect{
			Left: opt.size / 4, Top: opt.size / 4, Width: opt.size / 2, Height: opt.size / 2,
		}},
	} {
		glog.Infof("****** %s *****", q.title)
		glog.Infof("\tmap : %+v", q.zone)

		for _, c := range contenders {
			var n int
			measure(c.name, func() { n = c.query(q.zone) })
			glog.Infof("\t\tfound %d/%d", n, opt.items)
		}
	}

	glog.Info("****** CLEAR POINTS *****")
	for _, c := range contenders {
		measure(c.name, c.clear)
		glog.V(1).Infof("\t\t%s", c.report())
	}
}
