// File: reconstruct.go
// Role: the cost-aware peephole shortcut applied to a reconstructed
// point-id chain (§4.6). Unlike the source, a direct edge a→c only
// replaces b when it does not increase total cost (Design Note fix iii).
package hpastar

// compactPeephole scans consecutive triples (a, b, c) left to right and
// drops b whenever a direct edge a→c exists and costs no more than the
// two-hop path it replaces.
func (g *Graph) compactPeephole(path []int64) []int64 {
	if len(path) < 2 {
		return path
	}

	out := make([]int64, 0, len(path))
	out = append(out, path[0])

	i := 1
	for i < len(path)-1 {
		a := out[len(out)-1]
		b := path[i]
		c := path[i+1]

		if g.directEdgeNoWorse(a, b, c) {
			i++

			continue
		}
		out = append(out, b)
		i++
	}
	out = append(out, path[len(path)-1])

	return out
}

// directEdgeNoWorse reports whether a direct edge a→c exists and its cost
// does not exceed the cost of routing through b.
func (g *Graph) directEdgeNoWorse(a, b, c int64) bool {
	pa, aok := g.points[a]
	pb, bok := g.points[b]
	pc, cok := g.points[c]
	if !aok || !bok || !cok {
		return false
	}
	if _, direct := pa.neighbors[c]; !direct {
		return false
	}

	directCost := g.computeCost(pa, pc) * pc.WeightScale
	twoHop := g.computeCost(pa, pb)*pb.WeightScale + g.computeCost(pb, pc)*pc.WeightScale

	return directCost <= twoHop
}
