package hpastar

import "sort"

// nextPass increments and returns the epoch counter used to distinguish
// fresh search-state fields from stale ones left by a previous query.
func (g *Graph) nextPass() uint64 {
	g.pass++

	return g.pass
}

// resolveLayerMask substitutes the configured default layer mask (see
// WithDefaultLayerMask) whenever the caller passes 0 ("unspecified"); an
// explicit non-zero mask always passes through untouched.
func (g *Graph) resolveLayerMask(mask uint32) uint32 {
	if mask != 0 {
		return mask
	}

	return g.defaultLayerMask
}

// sortInt64s sorts ids ascending in place, giving the deterministic
// iteration order the teacher's core.Graph.Vertices() documents for its own
// string ids.
func sortInt64s(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
