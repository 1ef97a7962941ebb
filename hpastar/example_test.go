// Package hpastar_test provides runnable examples demonstrating the
// hierarchical pathfinder, in the manner of "go test -run Example".
package hpastar_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KnightNine/hpastar/hpastar"
)

// ExampleGraph_GetIDPath_flat demonstrates a plain point-to-point query
// where a cheaper two-hop detour through a lightly weighted third point
// wins over a more expensive direct edge.
func ExampleGraph_GetIDPath_flat() {
	g := hpastar.NewGraph()
	_ = g.AddPoint(0, r3.Vec{X: 0}, 1, 0)
	_ = g.AddPoint(1, r3.Vec{X: 5}, 1, 0)
	_ = g.AddPoint(2, r3.Vec{X: 1}, 0.1, 0)
	_ = g.ConnectPoints(0, 1, true)
	_ = g.ConnectPoints(0, 2, true)
	_ = g.ConnectPoints(2, 1, true)

	path, err := g.GetIDPath(0, 1, 0, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [0 2 1]
}

// ExampleGraph_GetIDPath_coarse demonstrates a two-region query where the
// coarse region search must cross a single region boundary.
func ExampleGraph_GetIDPath_coarse() {
	g := hpastar.NewGraph()
	for i := int64(0); i < 4; i++ {
		_ = g.AddPoint(i, r3.Vec{X: float64(i)}, 1, 0)
	}
	_ = g.ConnectPoints(0, 1, true)
	_ = g.ConnectPoints(1, 2, true)
	_ = g.ConnectPoints(2, 3, true)

	_ = g.AddRegion(100, []int64{0, 1}, r3.Vec{X: 0.5}, 0)
	_ = g.AddRegion(101, []int64{2, 3}, r3.Vec{X: 2.5}, 2)
	_ = g.ConnectRegions(100, 101, true)

	path, err := g.GetIDPath(0, 3, 0, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [0 1 2 3]
}
