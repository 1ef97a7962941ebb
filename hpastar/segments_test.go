package hpastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KnightNine/hpastar/hpastar"
)

func newTestGraph(t *testing.T, n int) *hpastar.Graph {
	t.Helper()
	g := hpastar.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddPoint(int64(i), r3.Vec{X: float64(i)}, 1, 0))
	}

	return g
}

func TestConnectPoints_Bidirectional(t *testing.T) {
	g := newTestGraph(t, 2)
	require.NoError(t, g.ConnectPoints(0, 1, true))

	ok, err := g.AreConnected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.AreConnected(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnectPoints_Directed(t *testing.T) {
	g := newTestGraph(t, 2)
	require.NoError(t, g.ConnectPoints(0, 1, false))

	ok, err := g.AreConnected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.AreConnected(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnectPoints_SamePoint(t *testing.T) {
	g := newTestGraph(t, 1)
	err := g.ConnectPoints(0, 0, true)
	assert.ErrorIs(t, err, hpastar.ErrSamePoint)
}

// TestConnectDisconnect_RoundTrip verifies the connect/disconnect round-trip
// law of §8: disconnecting exactly what was connected restores the segment
// set to its prior state (no dangling neighbor references either way).
func TestConnectDisconnect_RoundTrip(t *testing.T) {
	g := newTestGraph(t, 2)
	require.NoError(t, g.ConnectPoints(0, 1, true))
	require.NoError(t, g.DisconnectPoints(0, 1, true))

	ok, err := g.AreConnected(0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = g.AreConnected(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDisconnectPoints_PartialDowngradesToDirected(t *testing.T) {
	g := newTestGraph(t, 2)
	require.NoError(t, g.ConnectPoints(0, 1, true))
	require.NoError(t, g.DisconnectPoints(0, 1, false)) // removes only the 0->1 bit

	ok, err := g.AreConnected(0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = g.AreConnected(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemovePoint_SeversAllSegments(t *testing.T) {
	g := newTestGraph(t, 3)
	require.NoError(t, g.ConnectPoints(0, 1, true))
	require.NoError(t, g.ConnectPoints(1, 2, true))

	require.NoError(t, g.RemovePoint(1))

	conns, err := g.GetPointConnections(0)
	require.NoError(t, err)
	assert.Empty(t, conns)
	conns, err = g.GetPointConnections(2)
	require.NoError(t, err)
	assert.Empty(t, conns)

	assert.False(t, g.HasPoint(1))
}
