package hpastar

import "gonum.org/v1/gonum/spatial/r3"

// PointCostFunc computes a cost between two points. Implementations must be
// pure functions of the two points' exported fields and must not mutate the
// graph. The default, euclideanPointCost, returns the straight-line distance
// between their positions.
type PointCostFunc func(from, to *Point) float64

// RegionCostFunc is the region-level analogue of PointCostFunc.
type RegionCostFunc func(from, to *Region) float64

// euclideanPointCost is the default point cost oracle: straight-line
// distance between positions, computed with gonum's fixed-size 3-vector
// arithmetic rather than a general BLAS call, since Point.Pos is always
// exactly three components.
func euclideanPointCost(from, to *Point) float64 {
	return r3.Norm(r3.Sub(to.Pos, from.Pos))
}

// euclideanRegionCost is the region-level analogue of euclideanPointCost,
// applied to region anchor positions.
func euclideanRegionCost(from, to *Region) float64 {
	return r3.Norm(r3.Sub(to.Pos, from.Pos))
}

// EstimateCost returns the heuristic cost from point `from` to point `to`,
// via the installed cost oracle (Euclidean distance by default).
func (g *Graph) EstimateCost(from, to int64) (float64, error) {
	pf, pt, err := g.pointPair(from, to)
	if err != nil {
		return 0, err
	}

	return g.estimateCost(pf, pt), nil
}

// ComputeCost returns the true edge cost from point `from` to point `to`,
// via the installed cost oracle (Euclidean distance by default). It does
// not apply the destination's weight_scale; callers (the search routines)
// multiply by weight_scale themselves, per §4.4.
func (g *Graph) ComputeCost(from, to int64) (float64, error) {
	pf, pt, err := g.pointPair(from, to)
	if err != nil {
		return 0, err
	}

	return g.computeCost(pf, pt), nil
}

// EstimateRegionCost is the region-level analogue of EstimateCost.
func (g *Graph) EstimateRegionCost(from, to int64) (float64, error) {
	rf, rt, err := g.regionPair(from, to)
	if err != nil {
		return 0, err
	}

	return g.estimateRegionCost(rf, rt), nil
}

// ComputeRegionCost is the region-level analogue of ComputeCost.
func (g *Graph) ComputeRegionCost(from, to int64) (float64, error) {
	rf, rt, err := g.regionPair(from, to)
	if err != nil {
		return 0, err
	}

	return g.computeRegionCost(rf, rt), nil
}

func (g *Graph) pointPair(from, to int64) (*Point, *Point, error) {
	pf, ok := g.points[from]
	if !ok {
		return nil, nil, wrapf(ErrPointNotFound, "id=%d", from)
	}
	pt, ok := g.points[to]
	if !ok {
		return nil, nil, wrapf(ErrPointNotFound, "id=%d", to)
	}

	return pf, pt, nil
}

// weightedEstimateCost applies WithHeuristicWeight's scalar to the
// heuristic term used inside the open-list priority (f = g + weight*h).
// The public EstimateCost accessor deliberately does not apply this
// weight, since it reports the installed oracle's raw value.
func (g *Graph) weightedEstimateCost(from, to *Point) float64 {
	return g.heuristicWeight * g.estimateCost(from, to)
}

// weightedEstimateRegionCost is the region-level analogue of
// weightedEstimateCost.
func (g *Graph) weightedEstimateRegionCost(from, to *Region) float64 {
	return g.heuristicWeight * g.estimateRegionCost(from, to)
}

func (g *Graph) regionPair(from, to int64) (*Region, *Region, error) {
	rf, ok := g.regions[from]
	if !ok {
		return nil, nil, wrapf(ErrRegionNotFound, "id=%d", from)
	}
	rt, ok := g.regions[to]
	if !ok {
		return nil, nil, wrapf(ErrRegionNotFound, "id=%d", to)
	}

	return rf, rt, nil
}
