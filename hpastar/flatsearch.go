// File: flatsearch.go
// Role: classic A* over individual points (§4.4), shared by top-level flat
// queries and, in restricted form, by the region search's transition
// validator (§4.5).
package hpastar

// flatSearchOpts parameterizes a single flat A* run.
type flatSearchOpts struct {
	start, goal int64
	layerMask   uint32

	// regionFilter, if non-nil, restricts traversal to points owned by one
	// of these two regions — the restricted-to-regions mode used by the
	// region search to validate a single region-to-region transition.
	regionFilter *[2]int64

	// absGOffset is the true cost accumulated before `start` in the
	// top-level query; absolute scores let closest-reached tracking remain
	// meaningful across recursive sub-searches (§4.4).
	absGOffset float64
	// ultimateGoal is the point closest-reached tracking measures distance
	// to, so that it reflects the caller's real target even during a
	// region-restricted sub-search. absF for this purpose is the heuristic
	// estimate to ultimateGoal alone, not g+h: ranking "closest to goal" by
	// remaining distance, tie-broken by smaller accumulated cost, is what
	// makes the comparison actually favor a farther-explored point over the
	// start once the search has made progress.
	ultimateGoal int64
}

// flatSearchResult is the outcome of a flatSearch call.
type flatSearchResult struct {
	found bool
	path  []int64 // point ids start..goal inclusive, nil unless found
	cost  float64

	hasClosest bool
	closestID  int64
	closestAbsF float64
	closestAbsG float64
}

// flatSearch runs a single A* query from opts.start to opts.goal. It bumps
// the epoch counter, so any search state left over from a previous query is
// ignored regardless of its value.
func (g *Graph) flatSearch(opts flatSearchOpts) (flatSearchResult, error) {
	startP, ok := g.points[opts.start]
	if !ok {
		return flatSearchResult{}, wrapf(ErrPointNotFound, "flatSearch start=%d", opts.start)
	}
	goalP, ok := g.points[opts.goal]
	if !ok {
		return flatSearchResult{}, wrapf(ErrPointNotFound, "flatSearch goal=%d", opts.goal)
	}
	ultimateP, ok := g.points[opts.ultimateGoal]
	if !ok {
		ultimateP = goalP
	}

	pass := g.nextPass()

	startP.openPass = pass
	startP.gScore = 0
	startP.fScore = g.weightedEstimateCost(startP, goalP)
	startP.hasPrev = false
	startP.absG = opts.absGOffset
	startP.absF = g.estimateCost(startP, ultimateP)

	res := flatSearchResult{
		hasClosest:  true,
		closestID:   startP.ID,
		closestAbsF: startP.absF,
		closestAbsG: startP.absG,
	}

	var openList pointHeap
	pushPoint(&openList, startP.ID, startP.fScore, startP.gScore)

	for {
		item, ok := popPoint(&openList)
		if !ok {
			break
		}
		p := g.points[item.id]
		// Stale pop: either superseded by a better g-score since pushed, or
		// already closed this pass.
		if p.openPass != pass || item.g != p.gScore || p.closedPass == pass {
			continue
		}

		if p.ID == opts.goal {
			res.found = true
			res.cost = p.gScore
			res.path = reconstructFlatChain(g, opts.start, opts.goal)

			return res, nil
		}
		p.closedPass = pass

		neighbors := sortedNeighborIDs(p)
		for _, nid := range neighbors {
			np, ok := g.points[nid]
			if !ok || !np.Enabled {
				continue
			}
			if opts.layerMask != 0 && np.NavLayers&opts.layerMask == 0 {
				continue
			}
			if np.closedPass == pass {
				continue
			}
			if opts.regionFilter != nil && !regionMatches(np, opts.regionFilter) {
				continue
			}

			edgeCost := g.computeCost(p, np) * np.WeightScale
			tentativeG := p.gScore + edgeCost

			isOpen := np.openPass == pass
			if isOpen && tentativeG >= np.gScore {
				continue
			}

			np.openPass = pass
			np.gScore = tentativeG
			np.fScore = tentativeG + g.weightedEstimateCost(np, goalP)
			np.hasPrev = true
			np.prevPoint = p.ID
			np.absG = opts.absGOffset + tentativeG
			np.absF = g.estimateCost(np, ultimateP)
			pushPoint(&openList, np.ID, np.fScore, np.gScore)

			if np.absF < res.closestAbsF || (np.absF == res.closestAbsF && np.absG < res.closestAbsG) {
				res.closestID = np.ID
				res.closestAbsF = np.absF
				res.closestAbsG = np.absG
			}
		}
	}

	return res, nil
}

// regionMatches reports whether p belongs to one of the two regions named
// in filter.
func regionMatches(p *Point, filter *[2]int64) bool {
	if !p.hasRegion {
		return false
	}

	return p.regionID == filter[0] || p.regionID == filter[1]
}

// sortedNeighborIDs returns p's outgoing neighbor ids in ascending order,
// giving deterministic iteration matching §5's ordering guarantee.
func sortedNeighborIDs(p *Point) []int64 {
	ids := make([]int64, 0, len(p.neighbors))
	for id := range p.neighbors {
		ids = append(ids, id)
	}
	sortInt64s(ids)

	return ids
}

// reconstructFlatChain walks prevPoint back from goal to start and returns
// the point id chain in forward order.
func reconstructFlatChain(g *Graph, start, goal int64) []int64 {
	var rev []int64
	cur := goal
	for {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		p := g.points[cur]
		if !p.hasPrev {
			break
		}
		cur = p.prevPoint
	}

	out := make([]int64, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}
