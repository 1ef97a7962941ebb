// File: methods_segments.go
// Role: point-level segment (edge) maintenance — ConnectPoints,
// DisconnectPoints, AreConnected — plus the shared direction-membership
// helper reused by methods_regions.go for the region segment set.
package hpastar

// setMembership adds or removes id from m depending on present.
func setMembership(m map[int64]struct{}, id int64, present bool) {
	if present {
		m[id] = struct{}{}

		return
	}
	delete(m, id)
}

// applyPointDirection recomputes lo's and hi's neighbor/unlinked membership
// for the pair (lo, hi) from scratch given the segment's current direction,
// rather than diffing against the previous direction — simpler and just as
// cheap since each call touches exactly two points.
func applyPointDirection(lo, hi *Point, dir Direction) {
	setMembership(lo.neighbors, hi.ID, dir&Forward != 0)
	setMembership(hi.neighbors, lo.ID, dir&Backward != 0)
	setMembership(lo.unlinked, hi.ID, dir&Backward != 0 && dir&Forward == 0)
	setMembership(hi.unlinked, lo.ID, dir&Forward != 0 && dir&Backward == 0)
}

// directionBit returns the bit that an edge from `from` towards the other
// endpoint of key contributes, given from is one side of the canonical pair.
func directionBit(from int64, key segKey, bidirectional bool) Direction {
	if bidirectional {
		return Bidirectional
	}
	if from == key.lo {
		return Forward
	}

	return Backward
}

// ConnectPoints adds a directed edge a→b (or, if bidirectional, both
// directions) to the segment set, updating both endpoints' neighbor and
// unlinked maps. Direction bits combine via bitwise OR with any existing
// segment between a and b.
func (g *Graph) ConnectPoints(a, b int64, bidirectional bool) error {
	if a == b {
		return wrapf(ErrSamePoint, "ConnectPoints a=b=%d", a)
	}
	lo, hi, err := g.pointPair(a, b)
	if err != nil {
		return err
	}

	key := makeSegKey(a, b)
	dir := g.pointSegments[key] | directionBit(a, key, bidirectional)
	g.pointSegments[key] = dir

	if a == key.lo {
		applyPointDirection(lo, hi, dir)
	} else {
		applyPointDirection(hi, lo, dir)
	}

	return nil
}

// DisconnectPoints removes a directed edge a→b (or both directions, if
// bidirectional) from the segment set. If this erases one direction of a
// previously bidirectional segment, the remaining direction is reflected by
// applyPointDirection, which moves it from "linked" to "unlinked" on the
// appropriate endpoint.
func (g *Graph) DisconnectPoints(a, b int64, bidirectional bool) error {
	if a == b {
		return wrapf(ErrSamePoint, "DisconnectPoints a=b=%d", a)
	}
	p1, ok := g.points[a]
	if !ok {
		return wrapf(ErrPointNotFound, "DisconnectPoints id=%d", a)
	}
	p2, ok := g.points[b]
	if !ok {
		return wrapf(ErrPointNotFound, "DisconnectPoints id=%d", b)
	}

	key := makeSegKey(a, b)
	dir := g.pointSegments[key] &^ directionBit(a, key, bidirectional)

	var lo, hi *Point
	if a == key.lo {
		lo, hi = p1, p2
	} else {
		lo, hi = p2, p1
	}

	if dir == 0 {
		delete(g.pointSegments, key)
	} else {
		g.pointSegments[key] = dir
	}
	applyPointDirection(lo, hi, dir)

	return nil
}

// AreConnected reports whether an edge a→b currently exists (i.e. b is
// reachable from a by one hop), regardless of whether the reverse
// direction also exists.
func (g *Graph) AreConnected(a, b int64) (bool, error) {
	p, ok := g.points[a]
	if !ok {
		return false, wrapf(ErrPointNotFound, "AreConnected id=%d", a)
	}
	if !g.HasPoint(b) {
		return false, wrapf(ErrPointNotFound, "AreConnected id=%d", b)
	}
	_, reachable := p.neighbors[b]

	return reachable, nil
}
