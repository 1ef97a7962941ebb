// File: methods_regions.go
// Role: region lifecycle, membership invariants, and region-level segment
// maintenance — AddRegion, RemoveRegion, ConnectRegions, DisconnectRegions,
// AreRegionsConnected, GetRegionIDs, DebugRegion.
package hpastar

import "gonum.org/v1/gonum/spatial/r3"

// AddRegion creates or resets a region with the given member points.
//
// Fails with ErrNegativeID if id < 0 or ErrEmptyRegionMembers if memberIDs
// is empty. Each member id must name an existing point not already owned
// by a different region (ErrRegionMemberMissing / ErrRegionMemberOwned), and
// originID must be among the admitted members (ErrRegionOriginNotMember).
// Any validation failure discards the region entirely — partially admitted
// members are detached again before the error is returned. If id already
// names an existing region, its current members are detached first and it
// is refilled from scratch; the same validation applies to the refill.
func (g *Graph) AddRegion(id int64, memberIDs []int64, pos r3.Vec, originID int64) error {
	if id < 0 {
		return wrapf(ErrNegativeID, "AddRegion id=%d", id)
	}
	if len(memberIDs) == 0 {
		return wrapf(ErrEmptyRegionMembers, "AddRegion id=%d", id)
	}

	r := newRegion(id, pos, originID)
	if existing, ok := g.regions[id]; ok {
		detachRegionMembers(g, existing)
		// The region segment set still holds this region's connections, so
		// its neighbor maps carry over to keep mirroring that set.
		r.neighbors = existing.neighbors
		r.unlinked = existing.unlinked
	}
	g.regions[id] = r

	originFound := false
	for _, mid := range memberIDs {
		p, ok := g.points[mid]
		if !ok {
			_ = g.RemoveRegion(id)

			return wrapf(ErrRegionMemberMissing, "AddRegion id=%d member=%d", id, mid)
		}
		if p.hasRegion && p.regionID != id {
			_ = g.RemoveRegion(id)

			return wrapf(ErrRegionMemberOwned, "AddRegion id=%d member=%d owner=%d", id, mid, p.regionID)
		}
		admitRegionMember(r, p)
		if mid == originID {
			originFound = true
		}
	}
	if !originFound {
		_ = g.RemoveRegion(id)

		return wrapf(ErrRegionOriginNotMember, "AddRegion id=%d origin=%d", id, originID)
	}

	return nil
}

func admitRegionMember(r *Region, p *Point) {
	r.members[p.ID] = struct{}{}
	p.regionID = r.ID
	p.hasRegion = true
	r.NavLayers |= p.NavLayers
	if p.WeightScale != 1 {
		r.weighted[p.ID] = struct{}{}
		r.weightSum += p.WeightScale - 1
	}
	recomputeRegionWeight(r)
}

func detachRegionMembers(g *Graph, r *Region) {
	for mid := range r.members {
		if p, ok := g.points[mid]; ok {
			p.hasRegion = false
			p.regionID = -1
		}
	}
	r.members = make(map[int64]struct{})
	r.weighted = make(map[int64]struct{})
	r.weightSum = 0
	r.NavLayers = 0
	r.Weight = 1
}

// RemoveRegion detaches every member point (points survive, unowned),
// removes every region segment touching id, and deletes the region.
func (g *Graph) RemoveRegion(id int64) error {
	r, ok := g.regions[id]
	if !ok {
		return wrapf(ErrRegionNotFound, "RemoveRegion id=%d", id)
	}

	detachRegionMembers(g, r)

	for key := range g.regionSegments {
		if key.lo == id || key.hi == id {
			delete(g.regionSegments, key)
		}
	}
	for n := range r.neighbors {
		if other, ok := g.regions[n]; ok {
			delete(other.neighbors, id)
			delete(other.unlinked, id)
		}
	}
	for n := range r.unlinked {
		if other, ok := g.regions[n]; ok {
			delete(other.neighbors, id)
			delete(other.unlinked, id)
		}
	}

	delete(g.regions, id)

	return nil
}

// GetRegionIDs returns every region id currently stored, in ascending order.
func (g *Graph) GetRegionIDs() []int64 {
	ids := make([]int64, 0, len(g.regions))
	for id := range g.regions {
		ids = append(ids, id)
	}
	sortInt64s(ids)

	return ids
}

// DebugRegion returns [nav_layers] if the region has no weighted member, or
// [nav_layers, 0, weighted member ids...] (ascending) otherwise, matching
// the source's debug introspection format.
func (g *Graph) DebugRegion(id int64) ([]int64, error) {
	r, ok := g.regions[id]
	if !ok {
		return nil, wrapf(ErrRegionNotFound, "DebugRegion id=%d", id)
	}
	if len(r.weighted) == 0 {
		return []int64{int64(r.NavLayers)}, nil
	}

	out := []int64{int64(r.NavLayers), 0}
	weighted := make([]int64, 0, len(r.weighted))
	for wid := range r.weighted {
		weighted = append(weighted, wid)
	}
	sortInt64s(weighted)

	return append(out, weighted...), nil
}

// applyRegionDirection is the region-level analogue of applyPointDirection.
func applyRegionDirection(lo, hi *Region, dir Direction) {
	setMembership(lo.neighbors, hi.ID, dir&Forward != 0)
	setMembership(hi.neighbors, lo.ID, dir&Backward != 0)
	setMembership(lo.unlinked, hi.ID, dir&Backward != 0 && dir&Forward == 0)
	setMembership(hi.unlinked, lo.ID, dir&Forward != 0 && dir&Backward == 0)
}

// ConnectRegions is the region-level analogue of ConnectPoints.
func (g *Graph) ConnectRegions(a, b int64, bidirectional bool) error {
	if a == b {
		return wrapf(ErrSamePoint, "ConnectRegions a=b=%d", a)
	}
	lo, hi, err := g.regionPair(a, b)
	if err != nil {
		return err
	}

	key := makeSegKey(a, b)
	dir := g.regionSegments[key] | directionBit(a, key, bidirectional)
	g.regionSegments[key] = dir

	if a == key.lo {
		applyRegionDirection(lo, hi, dir)
	} else {
		applyRegionDirection(hi, lo, dir)
	}

	return nil
}

// DisconnectRegions is the region-level analogue of DisconnectPoints.
func (g *Graph) DisconnectRegions(a, b int64, bidirectional bool) error {
	if a == b {
		return wrapf(ErrSamePoint, "DisconnectRegions a=b=%d", a)
	}
	r1, ok := g.regions[a]
	if !ok {
		return wrapf(ErrRegionNotFound, "DisconnectRegions id=%d", a)
	}
	r2, ok := g.regions[b]
	if !ok {
		return wrapf(ErrRegionNotFound, "DisconnectRegions id=%d", b)
	}

	key := makeSegKey(a, b)
	dir := g.regionSegments[key] &^ directionBit(a, key, bidirectional)

	var lo, hi *Region
	if a == key.lo {
		lo, hi = r1, r2
	} else {
		lo, hi = r2, r1
	}

	if dir == 0 {
		delete(g.regionSegments, key)
	} else {
		g.regionSegments[key] = dir
	}
	applyRegionDirection(lo, hi, dir)

	return nil
}

// AreRegionsConnected reports whether an edge a→b currently exists between
// regions a and b.
func (g *Graph) AreRegionsConnected(a, b int64) (bool, error) {
	r, ok := g.regions[a]
	if !ok {
		return false, wrapf(ErrRegionNotFound, "AreRegionsConnected id=%d", a)
	}
	if _, ok := g.regions[b]; !ok {
		return false, wrapf(ErrRegionNotFound, "AreRegionsConnected id=%d", b)
	}
	_, reachable := r.neighbors[b]

	return reachable, nil
}
