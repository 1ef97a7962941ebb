// File: heap.go
// Role: binary min-heaps for the flat (point) and region A* open lists,
// following the teacher's lazy-decrease-key idiom from dijkstra/dijkstra.go:
// an improvement pushes a fresh entry rather than mutating one in place,
// and stale pops are detected by comparing the popped entry's cached
// g-score against the point's/region's current g-score.
package hpastar

import "container/heap"

// pointHeapItem is one entry in a pointHeap.
type pointHeapItem struct {
	id int64
	f  float64
	g  float64
}

// pointHeap orders pointHeapItem by ascending f-score, tie-broken by
// ascending g-score per §4.4's documented comparator.
type pointHeap []*pointHeapItem

func (h pointHeap) Len() int { return len(h) }
func (h pointHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].g < h[j].g
}
func (h pointHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pointHeap) Push(x interface{}) {
	*h = append(*h, x.(*pointHeapItem))
}
func (h *pointHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// pushPoint pushes id with the given scores onto h.
func pushPoint(h *pointHeap, id int64, f, g float64) {
	heap.Push(h, &pointHeapItem{id: id, f: f, g: g})
}

// popPoint pops and returns the lowest-f entry, or ok=false if h is empty.
func popPoint(h *pointHeap) (*pointHeapItem, bool) {
	if h.Len() == 0 {
		return nil, false
	}

	return heap.Pop(h).(*pointHeapItem), true
}

// regionHeapItem is one entry in a regionHeap.
type regionHeapItem struct {
	id int64
	f  float64
	g  float64
}

// regionHeap is the region-level analogue of pointHeap.
type regionHeap []*regionHeapItem

func (h regionHeap) Len() int { return len(h) }
func (h regionHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].g < h[j].g
}
func (h regionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *regionHeap) Push(x interface{}) {
	*h = append(*h, x.(*regionHeapItem))
}
func (h *regionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

func pushRegion(h *regionHeap, id int64, f, g float64) {
	heap.Push(h, &regionHeapItem{id: id, f: f, g: g})
}

func popRegion(h *regionHeap) (*regionHeapItem, bool) {
	if h.Len() == 0 {
		return nil, false
	}

	return heap.Pop(h).(*regionHeapItem), true
}
