package atrianeighbor

import (
	"math"
	"sort"
)

// NeighborHeap is a fixed-capacity max-heap of Neighbor keyed by Distance,
// used as the "k best so far" container during a query. The backing array
// is pre-allocated and TryInsert never grows it — the heap silently caps at
// whatever capacity Reset was given.
//
// Hand-rolled instead of going through container/heap so Push/Pop never
// box a Neighbor into an interface{} on the query hot path.
type NeighborHeap struct {
	items    []Neighbor
	k        int
	highDist float64
}

// NewNeighborHeap allocates a heap with the given initial capacity. Reset
// must still be called before first use to establish k.
func NewNeighborHeap(capacity int) *NeighborHeap {
	return &NeighborHeap{items: make([]Neighbor, 0, capacity), highDist: math.Inf(1)}
}

// Reset clears the heap, sets its capacity to k (growing the backing array
// only if the existing one is too small), and resets the pruning bound to
// +Inf.
func (h *NeighborHeap) Reset(k int) {
	if cap(h.items) < k {
		h.items = make([]Neighbor, 0, k)
	} else {
		h.items = h.items[:0]
	}
	h.k = k
	h.highDist = math.Inf(1)
}

// Len returns the number of neighbors currently held.
func (h *NeighborHeap) Len() int { return len(h.items) }

// Cap returns the heap's current capacity (the k passed to Reset).
func (h *NeighborHeap) Cap() int { return h.k }

// HighDist returns the current pruning bound: the heap is full and a new
// candidate must beat this distance to be inserted, or +Inf if the heap has
// not yet filled to capacity.
func (h *NeighborHeap) HighDist() float64 { return h.highDist }

// TryInsert inserts n if the heap has room, or if n beats the current
// worst-of-the-best (HighDist), replacing the root. Returns whether n was
// inserted. Does not reject duplicate indices — duplicate elimination is
// the Searcher's responsibility (see atriasearch's center-exclusion
// scheme).
func (h *NeighborHeap) TryInsert(n Neighbor) bool {
	if len(h.items) < h.k {
		h.items = append(h.items, n)
		h.siftUp(len(h.items) - 1)
		if len(h.items) == h.k {
			h.highDist = h.items[0].Distance
		}
		return true
	}
	if h.k == 0 || n.Distance >= h.highDist {
		return false
	}
	h.items[0] = n
	h.siftDown(0)
	h.highDist = h.items[0].Distance
	return true
}

// Finish returns the held neighbors sorted by ascending distance. Safe to
// call at any point; does not mutate the heap.
func (h *NeighborHeap) Finish() []Neighbor {
	out := make([]Neighbor, len(h.items))
	copy(out, h.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func (h *NeighborHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].Distance >= h.items[i].Distance {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *NeighborHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && h.items[left].Distance > h.items[largest].Distance {
			largest = left
		}
		if right < n && h.items[right].Distance > h.items[largest].Distance {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
