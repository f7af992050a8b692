// Package atriasearch implements best-first k-nearest-neighbor search and
// depth-first range search over an atriatree.Tree, plus the pre-allocated
// Context scratch state that makes repeated queries allocation-free.
package atriasearch

import "github.com/orneryd/atria/pkg/atrianeighbor"

// Stats reports the work a single query did, for diagnostics and
// benchmarking. Reset to zero at the start of every query.
type Stats struct {
	ClustersVisited int
	LeavesScanned   int
	PointsCompared  int
}

// Context holds the scratch state a query needs: a priority queue for
// best-first cluster expansion, a neighbor heap for the current k best
// candidates, and a stack for depth-first range traversal. Allocate one
// per goroutine and reuse it across many queries; every query resets it
// on entry — see atriapool for pooled acquisition.
//
// A Context's priority-queue capacity is fixed at construction (see
// EstimatePQCapacity); only the neighbor heap resizes across calls, since
// k commonly varies query to query while the tree shape (and hence a
// sufficient queue capacity) does not.
type Context struct {
	pq    *searchPQ
	heap  *atrianeighbor.NeighborHeap
	stack []rangeFrame
	stats Stats
}

// rangeFrame is one pending cluster in a range/count-range DFS: unlike
// k-NN's SearchItem, there is no evolving bound to order by, so the stack
// carries only what's needed to derive the children's bounds on arrival —
// dMin and dMax here are this cluster's own bounds, which clamp its
// children's bounds when the frame is popped.
type rangeFrame struct {
	idx        int
	dCenter    float64
	dMin, dMax float64
}

// NewContext allocates a Context whose priority queue holds up to
// pqCapacity pending clusters and whose neighbor heap holds up to k
// candidates.
func NewContext(pqCapacity, k int) *Context {
	heap := atrianeighbor.NewNeighborHeap(k)
	heap.Reset(k)
	return &Context{
		pq:    newSearchPQ(pqCapacity),
		heap:  heap,
		stack: make([]rangeFrame, 0, 64),
	}
}

// PQCapacity returns the Context's fixed priority-queue capacity.
func (c *Context) PQCapacity() int { return c.pq.capacity() }

// K returns the neighbor heap's current capacity.
func (c *Context) K() int { return c.heap.Cap() }

// Stats returns the statistics gathered by the most recently completed
// query.
func (c *Context) Stats() Stats { return c.stats }

// reset clears the Context for a new k-NN query, growing the neighbor
// heap if k exceeds its current capacity. The priority queue's capacity
// never changes here.
func (c *Context) reset(k int) {
	c.heap.Reset(k)
	c.pq.reset()
	c.stack = c.stack[:0]
	c.stats = Stats{}
}
