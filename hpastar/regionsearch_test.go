package hpastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KnightNine/hpastar/hpastar"
)

// TestGetIDPath_CoarseSameRegionDowngrade covers scenario 5: when both
// endpoints share a region, the coarse query must match the flat query
// exactly (§8's coarse/flat agreement law).
func TestGetIDPath_CoarseSameRegionDowngrade(t *testing.T) {
	g := hpastar.NewGraph()
	for i := int64(0); i < 4; i++ {
		require.NoError(t, g.AddPoint(i, r3.Vec{X: float64(i)}, 1, 0))
	}
	require.NoError(t, g.ConnectPoints(0, 1, true))
	require.NoError(t, g.ConnectPoints(1, 2, true))
	require.NoError(t, g.ConnectPoints(2, 3, true))
	require.NoError(t, g.AddRegion(100, []int64{0, 1, 2, 3}, r3.Vec{}, 0))

	coarse, err := g.GetIDPath(0, 3, 0, true)
	require.NoError(t, err)
	flat, err := g.GetIDPath(0, 3, 0, false)
	require.NoError(t, err)
	assert.Equal(t, flat, coarse)
}

// TestRegionSearch_RejectedRegionReconsideredAfterFreshPredecessor exercises
// Design Note fix (i): a region whose first predecessor fails to validate a
// transition must not be permanently closed out of the search — it must be
// reconsidered once a different predecessor's neighbor relaxation supplies
// a fresh candidate. The graph below forces the coarse search to pop the
// end region via a losing predecessor first, then succeed via a second
// predecessor reached only through a third, intermediate region.
func TestRegionSearch_RejectedRegionReconsideredAfterFreshPredecessor(t *testing.T) {
	g := hpastar.NewGraph()

	// Point 0 is region A's origin; point 1 is region B's origin (and the
	// overall goal); point 2 is region C's origin. A direct A->B point edge
	// deliberately does not exist, so the first predecessor the coarse
	// search will try for B (region A) must fail; only the A->C->B chain
	// of point edges actually connects start to goal.
	require.NoError(t, g.AddPoint(0, r3.Vec{X: 0}, 1, 0))
	require.NoError(t, g.AddPoint(1, r3.Vec{X: 1}, 1, 0))
	require.NoError(t, g.AddPoint(2, r3.Vec{X: 50}, 1, 0))
	require.NoError(t, g.ConnectPoints(0, 2, true))
	require.NoError(t, g.ConnectPoints(2, 1, true))

	const regionA, regionB, regionC = int64(100), int64(101), int64(102)
	require.NoError(t, g.AddRegion(regionA, []int64{0}, r3.Vec{X: 0}, 0))
	// regionB's anchor sits close to regionA so it is popped from the
	// region open list before regionC, even though its first predecessor
	// (regionA, with no direct point edge into region B) cannot validate.
	require.NoError(t, g.AddRegion(regionB, []int64{1}, r3.Vec{X: 1}, 1))
	require.NoError(t, g.AddRegion(regionC, []int64{2}, r3.Vec{X: 100}, 2))

	require.NoError(t, g.ConnectRegions(regionA, regionB, true))
	require.NoError(t, g.ConnectRegions(regionA, regionC, true))
	require.NoError(t, g.ConnectRegions(regionC, regionB, true))

	path, err := g.GetIDPath(0, 1, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1}, path)
}

// TestRegionSearch_GuardStopsBeforeFreshPredecessorSucceeds reuses the fixture
// from TestRegionSearch_RejectedRegionReconsideredAfterFreshPredecessor, but
// caps WithRegionSearchGuard at 1 transition attempt — too few to reach the
// second, successful canPath call — confirming the guard actually bounds the
// search rather than existing only as an unused option.
func TestRegionSearch_GuardStopsBeforeFreshPredecessorSucceeds(t *testing.T) {
	g := hpastar.NewGraph(hpastar.WithRegionSearchGuard(1))

	require.NoError(t, g.AddPoint(0, r3.Vec{X: 0}, 1, 0))
	require.NoError(t, g.AddPoint(1, r3.Vec{X: 1}, 1, 0))
	require.NoError(t, g.AddPoint(2, r3.Vec{X: 50}, 1, 0))
	require.NoError(t, g.ConnectPoints(0, 2, true))
	require.NoError(t, g.ConnectPoints(2, 1, true))

	const regionA, regionB, regionC = int64(100), int64(101), int64(102)
	require.NoError(t, g.AddRegion(regionA, []int64{0}, r3.Vec{X: 0}, 0))
	require.NoError(t, g.AddRegion(regionB, []int64{1}, r3.Vec{X: 1}, 1))
	require.NoError(t, g.AddRegion(regionC, []int64{2}, r3.Vec{X: 100}, 2))

	require.NoError(t, g.ConnectRegions(regionA, regionB, true))
	require.NoError(t, g.ConnectRegions(regionA, regionC, true))
	require.NoError(t, g.ConnectRegions(regionC, regionB, true))

	path, err := g.GetIDPath(0, 1, 0, true)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestGetIDPath_UseRegionsFalseIgnoresRegionMembership(t *testing.T) {
	g := hpastar.NewGraph()
	require.NoError(t, g.AddPoint(0, r3.Vec{X: 0}, 1, 0))
	require.NoError(t, g.AddPoint(1, r3.Vec{X: 1}, 1, 0))
	require.NoError(t, g.ConnectPoints(0, 1, true))
	// Two regions with no region segment between them: a coarse query could
	// not cross from one to the other.
	require.NoError(t, g.AddRegion(100, []int64{0}, r3.Vec{X: 0}, 0))
	require.NoError(t, g.AddRegion(101, []int64{1}, r3.Vec{X: 1}, 1))

	flatPath, err := g.GetIDPath(0, 1, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, flatPath)
}
