// File: regionsearch.go
// Role: coarse A* over regions (§4.5) and its per-transition connection
// validator, canPath.
package hpastar

// canPathResult is the outcome of validating a single region-to-region
// transition.
type canPathResult struct {
	found      bool
	entryPoint int64
	path       []int64 // point ids from, inclusive, the entry into `from`'s region through entryPoint
	cost       float64

	hasClosest  bool
	closestID   int64
	closestAbsF float64
	closestAbsG float64
}

// canPath attempts to realize the transition from point `from` (the
// predecessor region's entry point) into region `toRegionID`, reaching
// `target` — either the overall goal point (reachGoal) or toRegionID's
// origin. It tries, in order: (i) a single-point-region shortcut rejection,
// (ii) the straight-line oracle if installed, (iii) a flat search
// restricted to {fromRegionID, toRegionID}.
func (g *Graph) canPath(from, target int64, layerMask uint32, fromRegionID, toRegionID int64, ultimateGoal int64, absGOffset float64) (canPathResult, error) {
	toRegion, ok := g.regions[toRegionID]
	if !ok {
		return canPathResult{}, wrapf(ErrRegionNotFound, "canPath to=%d", toRegionID)
	}

	if len(toRegion.members) == 1 {
		var onlyID int64
		for id := range toRegion.members {
			onlyID = id
		}
		only := g.points[onlyID]
		if !only.Enabled || len(only.neighbors) == 0 {
			return canPathResult{}, nil
		}
	}

	filter := [2]int64{fromRegionID, toRegionID}

	if attempt := g.tryStraightLine(from, target, layerMask, filter); attempt.reachedTarget {
		return canPathResult{
			found:      true,
			entryPoint: target,
			path:       attempt.path,
			cost:       attempt.cost,
		}, nil
	}

	res, err := g.flatSearch(flatSearchOpts{
		start:        from,
		goal:         target,
		layerMask:    layerMask,
		regionFilter: &filter,
		absGOffset:   absGOffset,
		ultimateGoal: ultimateGoal,
	})
	if err != nil {
		return canPathResult{}, err
	}
	if !res.found {
		return canPathResult{
			hasClosest:  res.hasClosest,
			closestID:   res.closestID,
			closestAbsF: res.closestAbsF,
			closestAbsG: res.closestAbsG,
		}, nil
	}

	return canPathResult{
		found:       true,
		entryPoint:  target,
		path:        res.path,
		cost:        res.cost,
		hasClosest:  res.hasClosest,
		closestID:   res.closestID,
		closestAbsF: res.closestAbsF,
		closestAbsG: res.closestAbsG,
	}, nil
}

// regionSearchResult is the outcome of a coarse region-level query.
type regionSearchResult struct {
	found     bool
	pointPath []int64
	cost      float64

	hasClosest  bool
	closestID   int64
	closestAbsF float64
	closestAbsG float64
}

// regionSearch runs the coarse A* of §4.5 from the region owning `start`
// to the region owning `goal`. Callers must have already confirmed
// beginRegion != endRegion.
func (g *Graph) regionSearch(start, goal int64, layerMask uint32, beginRegion, endRegion int64) (regionSearchResult, error) {
	goalP, ok := g.points[goal]
	if !ok {
		return regionSearchResult{}, wrapf(ErrPointNotFound, "regionSearch goal=%d", goal)
	}
	startP, ok := g.points[start]
	if !ok {
		return regionSearchResult{}, wrapf(ErrPointNotFound, "regionSearch start=%d", start)
	}
	if !goalP.Enabled || (layerMask != 0 && goalP.NavLayers&layerMask == 0) {
		return regionSearchResult{found: false}, nil
	}

	startR, ok := g.regions[beginRegion]
	if !ok {
		return regionSearchResult{}, wrapf(ErrRegionNotFound, "regionSearch begin=%d", beginRegion)
	}
	goalR, ok := g.regions[endRegion]
	if !ok {
		return regionSearchResult{}, wrapf(ErrRegionNotFound, "regionSearch end=%d", endRegion)
	}

	pass := g.nextPass()

	startR.openPass = pass
	startR.gScore = 0
	startR.fScore = g.weightedEstimateRegionCost(startR, goalR)
	startR.searchPoint = start
	startR.hasPrev = false
	startR.prevRegions = nil
	startR.triedPass = 0
	startR.subPathFrom = nil
	startR.absG = 0

	closest := regionSearchResult{
		hasClosest:  true,
		closestID:   start,
		closestAbsF: g.estimateCost(startP, goalP),
		closestAbsG: 0,
	}

	var openList regionHeap
	pushRegion(&openList, startR.ID, startR.fScore, startR.gScore)

	transitionAttempts := 0

	for {
		item, ok := popRegion(&openList)
		if !ok {
			break
		}
		o := g.regions[item.id]
		if o.openPass != pass || item.g != o.gScore || o.closedPass == pass {
			continue
		}

		reachGoal := o.ID == endRegion
		var target int64
		if reachGoal {
			target = goal
		} else {
			target = o.OriginID
		}

		var (
			success      bool
			enteredPoint int64
			subPath      []int64
			prevUsed     int64
			transCost    float64
		)

		if o.ID == beginRegion {
			success = true
			enteredPoint = o.searchPoint
			subPath = []int64{o.searchPoint}
			prevUsed = -1
			transCost = 0
		} else {
			if o.triedPass != pass {
				o.tried = nil
				o.triedPass = pass
			}
			for _, prevID := range o.prevRegions {
				if o.tried != nil {
					if _, done := o.tried[prevID]; done {
						continue
					}
				}
				if g.regionSearchGuard > 0 && transitionAttempts >= g.regionSearchGuard {
					return regionSearchResult{
						found:       false,
						hasClosest:  closest.hasClosest,
						closestID:   closest.closestID,
						closestAbsF: closest.closestAbsF,
						closestAbsG: closest.closestAbsG,
					}, nil
				}
				transitionAttempts++

				prev := g.regions[prevID]
				res, err := g.canPath(prev.searchPoint, target, layerMask, prevID, o.ID, goal, prev.absG)
				if err != nil {
					return regionSearchResult{}, err
				}
				if o.tried == nil {
					o.tried = make(map[int64]struct{})
				}
				o.tried[prevID] = struct{}{}

				if res.hasClosest && closerThan(res.closestAbsF, res.closestAbsG, closest.closestAbsF, closest.closestAbsG) {
					closest.closestID = res.closestID
					closest.closestAbsF = res.closestAbsF
					closest.closestAbsG = res.closestAbsG
				}
				if res.found {
					success = true
					enteredPoint = res.entryPoint
					subPath = res.path
					prevUsed = prevID
					transCost = res.cost

					break
				}
			}
		}

		if !success {
			// Design Note fix (i): leave o open rather than decrementing
			// its open pass. It becomes eligible again only if a later
			// neighbor relaxation prepends a fresh predecessor candidate
			// and re-pushes it onto the heap.
			continue
		}

		o.searchPoint = enteredPoint
		o.hasPrev = prevUsed >= 0
		o.prevRegion = prevUsed
		if prevUsed < 0 {
			o.absG = transCost
		} else {
			o.absG = g.regions[prevUsed].absG + transCost
		}
		o.closedPass = pass
		if o.subPathFrom == nil {
			o.subPathFrom = make(map[int64][]int64)
		}
		o.subPathFrom[prevUsed] = subPath

		if reachGoal && enteredPoint == goal {
			path := reconstructRegionPath(g, beginRegion, endRegion)

			return regionSearchResult{found: true, pointPath: path, cost: o.absG}, nil
		}

		for _, nid := range sortedRegionNeighborIDs(o) {
			n, ok := g.regions[nid]
			if !ok || n.closedPass == pass {
				continue
			}
			tentativeG := o.gScore + g.computeRegionCost(o, n)
			improve := n.openPass != pass || tentativeG < n.gScore
			if n.openPass != pass {
				n.prevRegions = nil
			}

			n.openPass = pass
			if improve {
				n.gScore = tentativeG
				n.fScore = tentativeG + g.weightedEstimateRegionCost(n, goalR)
			}
			n.prevRegions = append([]int64{o.ID}, n.prevRegions...)
			pushRegion(&openList, n.ID, n.fScore, n.gScore)
		}
	}

	return regionSearchResult{
		found:       false,
		hasClosest:  closest.hasClosest,
		closestID:   closest.closestID,
		closestAbsF: closest.closestAbsF,
		closestAbsG: closest.closestAbsG,
	}, nil
}

// closerThan reports whether (f1, g1) ranks ahead of (f2, g2) under the
// same smaller-f, then smaller-g tie-break used by the open list heaps.
func closerThan(f1, g1, f2, g2 float64) bool {
	if f1 != f2 {
		return f1 < f2
	}

	return g1 < g2
}

// sortedRegionNeighborIDs returns o's outgoing neighbor region ids in
// ascending order, for deterministic iteration.
func sortedRegionNeighborIDs(o *Region) []int64 {
	ids := make([]int64, 0, len(o.neighbors))
	for id := range o.neighbors {
		ids = append(ids, id)
	}
	sortInt64s(ids)

	return ids
}

// reconstructRegionPath walks the region chain backward from endRegion to
// beginRegion, concatenating each transition's validated point-id sub-path
// and dropping the duplicate boundary point shared by consecutive segments.
func reconstructRegionPath(g *Graph, beginRegion, endRegion int64) []int64 {
	var segments [][]int64
	cur := endRegion
	for cur != beginRegion {
		r := g.regions[cur]
		segments = append(segments, r.subPathFrom[r.prevRegion])
		cur = r.prevRegion
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	var full []int64
	for i, seg := range segments {
		if i == 0 {
			full = append(full, seg...)

			continue
		}
		full = append(full, seg[1:]...)
	}

	return full
}
