// File: bulk.go
// Role: bulk loaders matching §6's packed-stream bulk operations: the
// in-memory packed-slice form (AppendPointsBulk/AppendConnectionsBulk,
// the Go analogue of append_as_bulk_array/set_as_bulk_array's
// PackedFloat64Array/PackedInt64Array), and, brought into scope by the
// AMBIENT STACK expansion, CSV readers over the same row shapes.
package hpastar

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// AppendPointsBulk adds points from a packed slice of six float64 values per
// point — id, x, y, z, weight, layerMask — mirroring the six-reals-per-point
// layout of the original source's append_as_bulk_array PackedFloat64Array
// argument. It delegates to AddPoint for each point, so the same
// precondition errors apply; on failure it stops and reports which point
// (by index, not id) failed, leaving every point before it already added.
func (g *Graph) AppendPointsBulk(points []float64) error {
	const stride = 6
	if len(points)%stride != 0 {
		return fmt.Errorf("hpastar: AppendPointsBulk: length %d is not a multiple of %d", len(points), stride)
	}

	for i := 0; i < len(points); i += stride {
		id := int64(points[i])
		pos := r3.Vec{X: points[i+1], Y: points[i+2], Z: points[i+3]}
		weight := points[i+4]
		layers := uint32(points[i+5])

		if err := g.AddPoint(id, pos, weight, layers); err != nil {
			return fmt.Errorf("hpastar: AppendPointsBulk point %d: %w", i/stride, err)
		}
	}

	return nil
}

// AppendConnectionsBulk connects points from a packed slice laid out as
// maxConnections+1 int64 values per point — the point id followed by up to
// maxConnections neighbor ids, padded with -1 for unused slots — mirroring
// append_as_bulk_array's (max_connections, pool_connections) PackedInt64Array
// argument pair. Each non-negative neighbor id is connected via
// ConnectPoints(pointID, neighborID, true).
func (g *Graph) AppendConnectionsBulk(connections []int64, maxConnections int64) error {
	if maxConnections <= 0 {
		return fmt.Errorf("hpastar: AppendConnectionsBulk: maxConnections must be positive, got %d", maxConnections)
	}

	stride := int(maxConnections) + 1
	if len(connections)%stride != 0 {
		return fmt.Errorf("hpastar: AppendConnectionsBulk: length %d is not a multiple of stride %d", len(connections), stride)
	}

	for i := 0; i < len(connections); i += stride {
		pointID := connections[i]
		for col := 1; col < stride; col++ {
			neighborID := connections[i+col]
			if neighborID < 0 {
				continue
			}
			if err := g.ConnectPoints(pointID, neighborID, true); err != nil {
				return fmt.Errorf("hpastar: AppendConnectionsBulk point %d: %w", pointID, err)
			}
		}
	}

	return nil
}

// LoadPointsCSV reads rows of (id, x, y, z, weight, layerMask) and calls
// AddPoint for each, matching §6's "packed stream of six reals per point".
func (g *Graph) LoadPointsCSV(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 6

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: %w", row, err)
		}

		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: bad id: %w", row, err)
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: bad x: %w", row, err)
		}
		y, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: bad y: %w", row, err)
		}
		z, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: bad z: %w", row, err)
		}
		weight, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: bad weight: %w", row, err)
		}
		layers, err := strconv.ParseUint(record[5], 10, 32)
		if err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: bad layer mask: %w", row, err)
		}

		if err := g.AddPoint(id, r3.Vec{X: x, Y: y, Z: z}, weight, uint32(layers)); err != nil {
			return fmt.Errorf("hpastar: LoadPointsCSV row %d: %w", row, err)
		}
	}
}

// LoadConnectionsCSV reads rows of (pointID, n1, ..., nK) and calls
// ConnectPoints(pointID, nI, true) for each non-negative nI, matching §6's
// "packed stream of (point_id, n1, ..., nK) per row with negative ids
// meaning 'no connection'".
func (g *Graph) LoadConnectionsCSV(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may have a variable neighbor count

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("hpastar: LoadConnectionsCSV row %d: %w", row, err)
		}
		if len(record) == 0 {
			continue
		}

		pointID, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return fmt.Errorf("hpastar: LoadConnectionsCSV row %d: bad point id: %w", row, err)
		}

		for col := 1; col < len(record); col++ {
			neighborID, err := strconv.ParseInt(record[col], 10, 64)
			if err != nil {
				return fmt.Errorf("hpastar: LoadConnectionsCSV row %d col %d: %w", row, col, err)
			}
			if neighborID < 0 {
				continue
			}
			if err := g.ConnectPoints(pointID, neighborID, true); err != nil {
				return fmt.Errorf("hpastar: LoadConnectionsCSV row %d col %d: %w", row, col, err)
			}
		}
	}
}
