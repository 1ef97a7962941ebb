// File: straightline.go
// Role: the optional straight-line oracle (§4.3) consulted by the region
// search's transition validator before it falls back to a restricted flat
// search.
package hpastar

// StraightLineFunc proposes a candidate sequence of point ids approximating
// a straight line from fromID towards toID. The first id in the returned
// sequence must be fromID. The region search validates the sequence's
// prefix point by point and only uses as much of it as remains valid.
type StraightLineFunc func(fromID, toID int64) []int64

// WithStraightLineFunc installs fn as the straight-line oracle. Installation
// requires fn to return a non-empty sequence for the test inputs (0, 1);
// if either test point does not currently exist, installation fails with
// ErrStraightLineInstall rather than silently leaving the oracle unset,
// since a caller configuring this expects to be told if it didn't take.
// Unlike the other With* configuration surfaces, this is a post-construction
// method rather than a functional Option: the installation probe needs
// points 0 and 1 to already exist on the receiver, so it cannot run as part
// of NewGraph's option application.
func (g *Graph) WithStraightLineFunc(fn StraightLineFunc) error {
	if fn == nil {
		g.straightLine = nil

		return nil
	}
	if !g.HasPoint(0) || !g.HasPoint(1) {
		return wrapf(ErrStraightLineInstall, "test points 0 and 1 must exist")
	}
	seq := fn(0, 1)
	if len(seq) == 0 {
		return wrapf(ErrStraightLineInstall, "callback returned an empty sequence for (0, 1)")
	}

	g.straightLine = fn

	return nil
}

// straightLineAttempt holds the outcome of validating a straight-line
// sequence's usable prefix.
type straightLineAttempt struct {
	reachedTarget bool
	path          []int64
	cost          float64
}

// tryStraightLine asks the installed oracle for a sequence from `from`
// towards `target`, then validates it point by point: every consecutive
// pair must form an existing directed edge; every point must exist, be
// enabled, be layer-compatible, and have weight_scale == 1 (§4.3); every
// point after the first must belong to one of the two regions named in
// filter. The sequence is only accepted as a full transition if its valid
// prefix reaches `target` exactly.
func (g *Graph) tryStraightLine(from, target int64, layerMask uint32, filter [2]int64) straightLineAttempt {
	if g.straightLine == nil {
		return straightLineAttempt{}
	}
	seq := g.straightLine(from, target)
	if len(seq) == 0 || seq[0] != from {
		return straightLineAttempt{}
	}

	path := []int64{seq[0]}
	var cost float64
	cur := g.points[seq[0]]
	if cur == nil || !cur.Enabled || cur.WeightScale != 1 {
		return straightLineAttempt{}
	}
	if layerMask != 0 && cur.NavLayers&layerMask == 0 {
		return straightLineAttempt{}
	}

	for i := 1; i < len(seq); i++ {
		nextID := seq[i]
		next, ok := g.points[nextID]
		if !ok || !next.Enabled {
			break
		}
		if next.WeightScale != 1 {
			break
		}
		if layerMask != 0 && next.NavLayers&layerMask == 0 {
			break
		}
		if !regionMatches(next, &filter) {
			break
		}
		if _, linked := cur.neighbors[nextID]; !linked {
			break
		}

		cost += g.computeCost(cur, next) * next.WeightScale
		path = append(path, nextID)
		cur = next

		if nextID == target {
			return straightLineAttempt{reachedTarget: true, path: path, cost: cost}
		}
	}

	return straightLineAttempt{}
}
