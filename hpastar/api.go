// File: api.go
// Role: the facade operations of §6 — GetIDPath, GetPointPath, and the
// proximity-path accessors — orchestrating flat vs. coarse search per §2's
// control-flow description.
package hpastar

import "gonum.org/v1/gonum/spatial/r3"

// GetIDPath computes a shortest path of point ids from start to goal,
// filtered by layerMask (0 means "no filter"). If useRegions is true and
// both points belong to regions, the engine first tries a coarse region
// search; if they share a region it downgrades to the flat search directly,
// matching the flat result exactly (§8's coarse/flat agreement law).
//
// On success it returns the path, which always begins with start and ends
// with goal. On failure (no route under the given layer mask) it returns a
// nil slice and a nil error — no-route is not an error condition (§7) —
// and populates the proximity buffer retrievable via
// GetProximityIDPathOfLastPathingCall.
func (g *Graph) GetIDPath(start, goal int64, layerMask uint32, useRegions bool) ([]int64, error) {
	if !g.HasPoint(start) {
		return nil, wrapf(ErrPointNotFound, "GetIDPath start=%d", start)
	}
	if !g.HasPoint(goal) {
		return nil, wrapf(ErrPointNotFound, "GetIDPath goal=%d", goal)
	}

	layerMask = g.resolveLayerMask(layerMask)

	if start == goal {
		g.lastProximityIDs = nil

		return []int64{start}, nil
	}

	if useRegions {
		beginRegion, hasBegin, _ := g.GetRegionIDOfPoint(start)
		endRegion, hasEnd, _ := g.GetRegionIDOfPoint(goal)
		if hasBegin && hasEnd && beginRegion != endRegion {
			return g.getIDPathCoarse(start, goal, layerMask, beginRegion, endRegion)
		}
	}

	return g.getIDPathFlat(start, goal, layerMask)
}

func (g *Graph) getIDPathFlat(start, goal int64, layerMask uint32) ([]int64, error) {
	res, err := g.flatSearch(flatSearchOpts{
		start:        start,
		goal:         goal,
		layerMask:    layerMask,
		ultimateGoal: goal,
	})
	if err != nil {
		return nil, err
	}
	if !res.found {
		g.lastProximityIDs = reconstructProximityChain(g, res.closestID)

		return nil, nil
	}

	g.lastProximityIDs = nil

	return g.compactPeephole(res.path), nil
}

func (g *Graph) getIDPathCoarse(start, goal int64, layerMask uint32, beginRegion, endRegion int64) ([]int64, error) {
	res, err := g.regionSearch(start, goal, layerMask, beginRegion, endRegion)
	if err != nil {
		return nil, err
	}
	if !res.found {
		g.lastProximityIDs = reconstructProximityChain(g, res.closestID)

		return nil, nil
	}

	g.lastProximityIDs = nil

	return g.compactPeephole(res.pointPath), nil
}

// reconstructProximityChain walks prevPoint pointers back from closestID
// until it reaches a point with no recorded predecessor, independent of
// epoch, and returns the chain in forward order. In coarse mode this is a
// best-effort reconstruction local to whichever sub-search discovered
// closestID (§9: search state is colocated on points across recursive
// sub-searches), not necessarily a chain all the way back to the original
// start.
func reconstructProximityChain(g *Graph, closestID int64) []int64 {
	p, ok := g.points[closestID]
	if !ok {
		return nil
	}

	var rev []int64
	for {
		rev = append(rev, p.ID)
		if !p.hasPrev {
			break
		}
		prev, ok := g.points[p.prevPoint]
		if !ok {
			break
		}
		p = prev
	}

	out := make([]int64, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}

// GetPointPath is the positional analogue of GetIDPath: it returns the
// position of each point on the path rather than its id.
func (g *Graph) GetPointPath(start, goal int64, layerMask uint32, useRegions bool) ([]r3.Vec, error) {
	ids, err := g.GetIDPath(start, goal, layerMask, useRegions)
	if err != nil || ids == nil {
		return nil, err
	}

	return g.idsToPositions(ids), nil
}

func (g *Graph) idsToPositions(ids []int64) []r3.Vec {
	out := make([]r3.Vec, len(ids))
	for i, id := range ids {
		out[i] = g.points[id].Pos
	}

	return out
}

// GetProximityIDPathOfLastPathingCall returns the partial path from the
// last GetIDPath/GetPointPath call's start to its closest-reached point, or
// nil if the last call found a complete route (or no call has run yet).
func (g *Graph) GetProximityIDPathOfLastPathingCall() []int64 {
	return g.lastProximityIDs
}

// GetProximityPointPathOfLastPathingCall is the positional analogue of
// GetProximityIDPathOfLastPathingCall.
func (g *Graph) GetProximityPointPathOfLastPathingCall() []r3.Vec {
	if g.lastProximityIDs == nil {
		return nil
	}

	return g.idsToPositions(g.lastProximityIDs)
}
