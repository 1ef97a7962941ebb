// Command hpastar loads a point/connection graph from CSV files and prints
// the shortest path between two point ids, exercising the hpastar package
// as a minimal CLI harness rather than a Go API.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/KnightNine/hpastar/hpastar"
)

func main() {
	var (
		pointsPath = flag.String("points", "", "CSV file of id,x,y,z,weight,layerMask rows")
		connsPath  = flag.String("connections", "", "CSV file of pointID,n1,...,nK rows")
		start      = flag.Int64("start", 0, "start point id")
		goal       = flag.Int64("goal", 0, "goal point id")
		layerMask  = flag.Uint("layers", 0, "navigation layer mask filter (0 = no filter)")
		useRegions = flag.Bool("regions", false, "use coarse region search when start and goal belong to different regions")
	)
	flag.Parse()

	if *pointsPath == "" || *connsPath == "" {
		log.Fatal("hpastar: -points and -connections are required")
	}

	g := hpastar.NewGraph()

	if err := loadCSV(*pointsPath, g.LoadPointsCSV); err != nil {
		log.Fatalf("hpastar: %v", err)
	}
	if err := loadCSV(*connsPath, g.LoadConnectionsCSV); err != nil {
		log.Fatalf("hpastar: %v", err)
	}

	path, err := g.GetIDPath(*start, *goal, uint32(*layerMask), *useRegions)
	if err != nil {
		log.Fatalf("hpastar: query failed: %v", err)
	}
	if path == nil {
		fmt.Printf("no route from %d to %d\n", *start, *goal)
		if proximity := g.GetProximityIDPathOfLastPathingCall(); len(proximity) > 0 {
			fmt.Printf("closest reached: %v\n", proximity)
		}
		os.Exit(1)
	}

	fmt.Printf("path: %v\n", path)
}

func loadCSV(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := load(f); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}
