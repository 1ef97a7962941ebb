// Package hpastar implements a hierarchical A* pathfinder over a weighted,
// directed graph of points embedded in 3-D Euclidean space.
//
// A Graph owns two kinds of vertices: Points, the primary search nodes, and
// Regions, optional super-nodes that group a disjoint set of points for
// coarse-grained planning. Points and Regions are connected by Segments —
// directional or bidirectional edges stored canonically by (smaller id,
// larger id) plus a direction mask.
//
// # Queries
//
// GetIDPath and GetPointPath compute a shortest path between two points.
// When useRegions is false, or when the start and goal points share a
// region, the engine runs a flat A* directly over points. Otherwise it runs
// a coarse A* over regions first, and for every region-to-region transition
// it must cross, it validates the transition either via an optional
// straight-line oracle or by a flat A* restricted to the two adjacent
// regions. The two searches share the same binary-heap discipline and the
// same tie-break rule: on equal f-score, the node with the smaller g-score
// (less accumulated cost from the start) wins.
//
// # Search state and epochs
//
// Per-point and per-region search fields (g-score, f-score, predecessor,
// open/closed flags) live directly on the Point and Region values rather
// than in a per-query side map. A monotonically increasing "pass" counter
// is bumped once per query; stale search fields from a previous query are
// recognized by comparing their recorded pass against the current one, so
// no per-query allocation or explicit reset is needed.
//
// # Cost oracles
//
// The default edge cost and heuristic are Euclidean distance, computed via
// gonum.org/v1/gonum/spatial/r3. Callers may override any of the four cost
// hooks (point estimate/compute, region estimate/compute) with WithCostOracle
// and WithRegionCostOracle.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. Query operations mutate per-point
// and per-region search state and the epoch counter, so even path queries
// are not read-only. Callers needing concurrent access must serialize their
// own calls or use independent Graph instances.
package hpastar
