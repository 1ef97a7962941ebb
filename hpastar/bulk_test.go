package hpastar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KnightNine/hpastar/hpastar"
)

func TestLoadPointsCSV(t *testing.T) {
	g := hpastar.NewGraph()
	csv := "0,0,0,0,1,0\n1,1,0,0,1,0\n2,2,0,0,2.5,0\n"

	require.NoError(t, g.LoadPointsCSV(strings.NewReader(csv)))

	assert.Equal(t, 3, g.GetPointCount())
	w, err := g.GetPointWeightScale(2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestLoadPointsCSV_BadRow(t *testing.T) {
	g := hpastar.NewGraph()
	err := g.LoadPointsCSV(strings.NewReader("0,0,0,0,1,0\nnotanumber,0,0,0,1,0\n"))
	assert.Error(t, err)
}

func TestLoadConnectionsCSV(t *testing.T) {
	g := hpastar.NewGraph()
	require.NoError(t, g.LoadPointsCSV(strings.NewReader("0,0,0,0,1,0\n1,1,0,0,1,0\n2,2,0,0,1,0\n")))
	require.NoError(t, g.LoadConnectionsCSV(strings.NewReader("0,1,-1\n1,2\n")))

	ok, err := g.AreConnected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.AreConnected(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.AreConnected(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadConnectionsCSV_UnknownPoint(t *testing.T) {
	g := hpastar.NewGraph()
	require.NoError(t, g.LoadPointsCSV(strings.NewReader("0,0,0,0,1,0\n")))
	err := g.LoadConnectionsCSV(strings.NewReader("0,99\n"))
	assert.ErrorIs(t, err, hpastar.ErrPointNotFound)
}

func TestAppendPointsBulk(t *testing.T) {
	g := hpastar.NewGraph()
	points := []float64{
		0, 0, 0, 0, 1, 0,
		1, 1, 0, 0, 1, 0,
		2, 2, 0, 0, 2.5, 0,
	}

	require.NoError(t, g.AppendPointsBulk(points))

	assert.Equal(t, 3, g.GetPointCount())
	w, err := g.GetPointWeightScale(2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestAppendPointsBulk_BadLength(t *testing.T) {
	g := hpastar.NewGraph()
	err := g.AppendPointsBulk([]float64{0, 0, 0, 0, 1})
	assert.Error(t, err)
}

func TestAppendConnectionsBulk(t *testing.T) {
	g := hpastar.NewGraph()
	require.NoError(t, g.AppendPointsBulk([]float64{
		0, 0, 0, 0, 1, 0,
		1, 1, 0, 0, 1, 0,
		2, 2, 0, 0, 1, 0,
	}))

	const maxConnections = 2
	require.NoError(t, g.AppendConnectionsBulk([]int64{
		0, 1, -1,
		1, 2, -1,
	}, maxConnections))

	ok, err := g.AreConnected(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.AreConnected(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.AreConnected(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppendConnectionsBulk_UnknownPoint(t *testing.T) {
	g := hpastar.NewGraph()
	require.NoError(t, g.AppendPointsBulk([]float64{0, 0, 0, 0, 1, 0}))
	err := g.AppendConnectionsBulk([]int64{0, 99}, 1)
	assert.ErrorIs(t, err, hpastar.ErrPointNotFound)
}

func TestAppendConnectionsBulk_BadMaxConnections(t *testing.T) {
	g := hpastar.NewGraph()
	err := g.AppendConnectionsBulk([]int64{0, 1}, 0)
	assert.Error(t, err)
}
