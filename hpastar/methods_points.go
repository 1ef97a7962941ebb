// File: methods_points.go
// Role: point lifecycle and queries — AddPoint, setters, RemovePoint,
// HasPoint, GetPoint*, GetClosestPoint, Reserve/Clear.
package hpastar

import "gonum.org/v1/gonum/spatial/r3"

// AddPoint inserts a new point, or updates an existing one in place.
//
// Fails with ErrNegativeID if id < 0, ErrWeightBelowZero if weight < 0, or
// ErrLayerBitReserved if layers uses bit 31 or higher. If a point with id
// already exists, its position is overwritten and SetPointWeightScale /
// SetPointLayers are invoked so any owning region stays consistent (or is
// removed, per their own contracts); otherwise a new enabled point is
// created.
func (g *Graph) AddPoint(id int64, pos r3.Vec, weight float64, layers uint32) error {
	if id < 0 {
		return wrapf(ErrNegativeID, "AddPoint id=%d", id)
	}
	if weight < 0 {
		return wrapf(ErrWeightBelowZero, "AddPoint id=%d weight=%g", id, weight)
	}
	if layers > maxLayerMask {
		return wrapf(ErrLayerBitReserved, "AddPoint id=%d layers=%#x", id, layers)
	}

	if p, ok := g.points[id]; ok {
		p.Pos = pos
		if err := g.SetPointWeightScale(id, weight); err != nil {
			return err
		}

		return g.SetPointLayers(id, layers)
	}

	g.points[id] = newPoint(id, pos, weight, layers)

	return nil
}

// SetPointPosition updates an existing point's position.
func (g *Graph) SetPointPosition(id int64, pos r3.Vec) error {
	p, ok := g.points[id]
	if !ok {
		return wrapf(ErrPointNotFound, "SetPointPosition id=%d", id)
	}
	p.Pos = pos

	return nil
}

// GetPointPosition returns the position of point id.
func (g *Graph) GetPointPosition(id int64) (r3.Vec, error) {
	p, ok := g.points[id]
	if !ok {
		return r3.Vec{}, wrapf(ErrPointNotFound, "GetPointPosition id=%d", id)
	}

	return p.Pos, nil
}

// SetPointWeightScale updates a point's weight multiplier and, if the point
// belongs to a region, incrementally updates that region's averaged weight.
func (g *Graph) SetPointWeightScale(id int64, weight float64) error {
	if weight < 0 {
		return wrapf(ErrWeightBelowZero, "SetPointWeightScale id=%d weight=%g", id, weight)
	}
	p, ok := g.points[id]
	if !ok {
		return wrapf(ErrPointNotFound, "SetPointWeightScale id=%d", id)
	}

	old := p.WeightScale
	p.WeightScale = weight

	if p.hasRegion {
		r := g.regions[p.regionID]
		r.weightSum += weight - old
		if weight == 1 {
			delete(r.weighted, id)
		} else {
			r.weighted[id] = struct{}{}
		}
		recomputeRegionWeight(r)
	}

	return nil
}

// GetPointWeightScale returns point id's weight multiplier.
func (g *Graph) GetPointWeightScale(id int64) (float64, error) {
	p, ok := g.points[id]
	if !ok {
		return 0, wrapf(ErrPointNotFound, "GetPointWeightScale id=%d", id)
	}

	return p.WeightScale, nil
}

// recomputeRegionWeight derives Region.Weight from the running weightSum,
// pinning it to exactly 1 when no member is weighted (Design Note fix ii:
// floating-point division throughout, never integer 1/size).
func recomputeRegionWeight(r *Region) {
	if len(r.weighted) == 0 {
		r.Weight = 1
		r.weightSum = 0

		return
	}
	r.Weight = 1 + r.weightSum/float64(len(r.members))
}

// SetPointDisabled sets or clears the enabled flag. A disabled point is
// skipped by searches and by GetClosestPoint.
func (g *Graph) SetPointDisabled(id int64, disabled bool) error {
	p, ok := g.points[id]
	if !ok {
		return wrapf(ErrPointNotFound, "SetPointDisabled id=%d", id)
	}
	p.Enabled = !disabled

	return nil
}

// IsPointDisabled reports whether point id is currently disabled.
func (g *Graph) IsPointDisabled(id int64) (bool, error) {
	p, ok := g.points[id]
	if !ok {
		return false, wrapf(ErrPointNotFound, "IsPointDisabled id=%d", id)
	}

	return !p.Enabled, nil
}

// SetPointLayers replaces a point's navigation layer mask. Because a
// region's nav_layers is the OR of its members and cannot be safely
// decreased without rescanning every member, any owning region is removed
// in its entirety rather than patched (§4.1).
func (g *Graph) SetPointLayers(id int64, mask uint32) error {
	if mask > maxLayerMask {
		return wrapf(ErrLayerBitReserved, "SetPointLayers id=%d mask=%#x", id, mask)
	}
	p, ok := g.points[id]
	if !ok {
		return wrapf(ErrPointNotFound, "SetPointLayers id=%d", id)
	}
	if p.hasRegion {
		if err := g.RemoveRegion(p.regionID); err != nil {
			return err
		}
	}
	p.NavLayers = mask

	return nil
}

// SetPointLayer sets or clears a single bit of a point's navigation layer mask.
func (g *Graph) SetPointLayer(id int64, bit uint, on bool) error {
	if bit >= layerReservedBit {
		return wrapf(ErrLayerBitReserved, "SetPointLayer id=%d bit=%d", id, bit)
	}
	p, ok := g.points[id]
	if !ok {
		return wrapf(ErrPointNotFound, "SetPointLayer id=%d", id)
	}
	mask := p.NavLayers
	if on {
		mask |= 1 << bit
	} else {
		mask &^= 1 << bit
	}

	return g.SetPointLayers(id, mask)
}

// GetPointLayer reports whether bit of point id's layer mask is set.
func (g *Graph) GetPointLayer(id int64, bit uint) (bool, error) {
	p, ok := g.points[id]
	if !ok {
		return false, wrapf(ErrPointNotFound, "GetPointLayer id=%d", id)
	}
	if bit >= layerReservedBit {
		return false, wrapf(ErrLayerBitReserved, "GetPointLayer id=%d bit=%d", id, bit)
	}

	return p.NavLayers&(1<<bit) != 0, nil
}

// GetPointLayersValue returns point id's full navigation layer mask.
func (g *Graph) GetPointLayersValue(id int64) (uint32, error) {
	p, ok := g.points[id]
	if !ok {
		return 0, wrapf(ErrPointNotFound, "GetPointLayersValue id=%d", id)
	}

	return p.NavLayers, nil
}

// HasPoint reports whether id names an existing point.
func (g *Graph) HasPoint(id int64) bool {
	_, ok := g.points[id]

	return ok
}

// GetPointCount returns the number of points currently stored.
func (g *Graph) GetPointCount() int {
	return len(g.points)
}

// GetPointCapacity returns the hinted storage capacity set by Reserve, or
// the current point count if Reserve was never called with a larger value.
// Go maps do not expose true capacity, so this is advisory bookkeeping only.
func (g *Graph) GetPointCapacity() int {
	if g.reserved > len(g.points) {
		return g.reserved
	}

	return len(g.points)
}

// Reserve hints that the graph should be able to hold at least n points
// without reallocation. Go's map does not support explicit reservation
// against an existing map, so this only affects GetPointCapacity's
// reported value and, for a still-empty graph, the size of the backing map.
func (g *Graph) Reserve(n int) {
	if n <= 0 {
		return
	}
	if n > g.reserved {
		g.reserved = n
	}
	if len(g.points) == 0 {
		g.points = make(map[int64]*Point, n)
	}
}

// GetPointIDs returns every point id currently stored, in ascending order —
// matching the teacher's core.Graph.Vertices() convention of returning a
// deterministically sorted snapshot rather than raw map iteration order.
func (g *Graph) GetPointIDs() []int64 {
	ids := make([]int64, 0, len(g.points))
	for id := range g.points {
		ids = append(ids, id)
	}
	sortInt64s(ids)

	return ids
}

// GetPointConnections returns the ids of points reachable by an outgoing
// edge from id, in ascending order.
func (g *Graph) GetPointConnections(id int64) ([]int64, error) {
	p, ok := g.points[id]
	if !ok {
		return nil, wrapf(ErrPointNotFound, "GetPointConnections id=%d", id)
	}
	out := make([]int64, 0, len(p.neighbors))
	for n := range p.neighbors {
		out = append(out, n)
	}
	sortInt64s(out)

	return out, nil
}

// GetRegionIDOfPoint returns the id of the region that owns point id, and
// false if the point belongs to no region.
func (g *Graph) GetRegionIDOfPoint(id int64) (int64, bool, error) {
	p, ok := g.points[id]
	if !ok {
		return 0, false, wrapf(ErrPointNotFound, "GetRegionIDOfPoint id=%d", id)
	}

	return p.regionID, p.hasRegion, nil
}

// RemovePoint deletes a point, severing every incident segment and both
// neighbor back-reference maps. If the point belonged to a region, that
// region is removed first (region membership cannot be validated cheaply
// once a member disappears). The removed id becomes the advisory "next
// free id" hint.
func (g *Graph) RemovePoint(id int64) error {
	p, ok := g.points[id]
	if !ok {
		return wrapf(ErrPointNotFound, "RemovePoint id=%d", id)
	}

	if p.hasRegion {
		if err := g.RemoveRegion(p.regionID); err != nil {
			return err
		}
	}

	for n := range p.neighbors {
		delete(g.pointSegments, makeSegKey(id, n))
		if other, ok := g.points[n]; ok {
			delete(other.neighbors, id)
			delete(other.unlinked, id)
		}
	}
	for n := range p.unlinked {
		delete(g.pointSegments, makeSegKey(id, n))
		if other, ok := g.points[n]; ok {
			delete(other.neighbors, id)
			delete(other.unlinked, id)
		}
	}

	delete(g.points, id)
	g.nextFreeID = id

	return nil
}

// Clear removes every point, region, and segment from the graph.
func (g *Graph) Clear() {
	g.points = make(map[int64]*Point)
	g.regions = make(map[int64]*Region)
	g.pointSegments = make(map[segKey]Direction)
	g.regionSegments = make(map[segKey]Direction)
	g.nextFreeID = 0
	g.pass = g.epochStart
	g.lastProximityIDs = nil
}

// GetClosestPoint returns the id of the enabled (unless includeDisabled),
// layer-compatible point nearest to pos by squared Euclidean distance. Ties
// are broken by preferring the smaller id. Returns false if no point
// qualifies.
func (g *Graph) GetClosestPoint(pos r3.Vec, includeDisabled bool, layerMask uint32) (int64, bool) {
	layerMask = g.resolveLayerMask(layerMask)

	var (
		bestID   int64
		bestDist float64
		found    bool
	)
	ids := g.GetPointIDs()
	for _, id := range ids {
		p := g.points[id]
		if !includeDisabled && !p.Enabled {
			continue
		}
		if layerMask != 0 && p.NavLayers&layerMask == 0 {
			continue
		}
		d := r3.Norm2(r3.Sub(p.Pos, pos))
		if !found || d < bestDist {
			bestID, bestDist, found = id, d, true
		}
	}

	return bestID, found
}

// GetClosestPositionInSegment returns the closest point on any segment to
// pos, projecting onto each segment's line and clamping to the segment
// extent. Returns false if the graph has no segments.
func (g *Graph) GetClosestPositionInSegment(pos r3.Vec) (r3.Vec, bool) {
	var (
		best      r3.Vec
		bestDist  float64
		found     bool
	)
	for key := range g.pointSegments {
		a, aok := g.points[key.lo]
		b, bok := g.points[key.hi]
		if !aok || !bok {
			continue
		}
		candidate := closestPointOnSegment(a.Pos, b.Pos, pos)
		d := r3.Norm2(r3.Sub(candidate, pos))
		if !found || d < bestDist {
			best, bestDist, found = candidate, d, true
		}
	}

	return best, found
}

// closestPointOnSegment projects pos onto the line segment a-b, clamping
// the parametric position to [0, 1] so the result always lies on the
// segment rather than its infinite extension.
func closestPointOnSegment(a, b, pos r3.Vec) r3.Vec {
	ab := r3.Sub(b, a)
	denom := r3.Dot(ab, ab)
	if denom == 0 {
		return a
	}
	t := r3.Dot(r3.Sub(pos, a), ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return r3.Add(a, r3.Scale(t, ab))
}
