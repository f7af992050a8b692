// Package atriatree builds the hierarchical binary cluster tree that
// atriasearch traverses: each cluster picks a representative center point,
// then splits its remaining points between two children by proximity to
// two newly chosen centers, bottoming out at small terminal clusters
// scanned linearly.
package atriatree

import (
	"github.com/orneryd/atria/pkg/atriametric"
	"github.com/orneryd/atria/pkg/atriapoints"
)

// Tree is an immutable cluster tree over a PointSet. The zero value is not
// usable; obtain one from Build.
type Tree struct {
	Metric atriametric.Metric
	Points atriapoints.PointSet

	// Perm is the permutation table: every point that is not some
	// cluster's Center appears exactly once, grouped contiguously by
	// enclosing terminal cluster. Dist[i] is Perm[i]'s distance to its
	// enclosing terminal cluster's Center, cached during Build so the
	// searcher's leaf scan can apply a triangle-inequality prune before
	// paying for a real distance computation.
	Perm []int
	Dist []float64

	// Clusters is addressed by index; Clusters[0] is always the root.
	Clusters []Cluster

	LeafThreshold int

	TotalClusters int
	TerminalNodes int
}

// Root returns the root cluster.
func (t *Tree) Root() *Cluster { return &t.Clusters[0] }

// N returns the number of points in the tree.
func (t *Tree) N() int { return t.Points.Len() }

// Dim returns the dimensionality of the tree's points.
func (t *Tree) Dim() int { return t.Points.Dim() }

// Stats summarizes a Tree's shape, primarily for diagnostics and tests.
type Stats struct {
	NumPoints   int
	NumClusters int
	NumInternal int
	NumTerminal int
	MaxDepth    int
	MaxLeafSize int
	MinLeafSize int
}

// Stats walks the tree and computes summary statistics. Allocates and
// recurses — a diagnostics helper, not part of the query path.
func (t *Tree) Stats() Stats {
	s := Stats{NumPoints: t.N(), MinLeafSize: -1}
	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		s.NumClusters++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		c := &t.Clusters[idx]
		if c.IsLeaf() {
			s.NumTerminal++
			if c.Length > s.MaxLeafSize {
				s.MaxLeafSize = c.Length
			}
			if s.MinLeafSize == -1 || c.Length < s.MinLeafSize {
				s.MinLeafSize = c.Length
			}
			return
		}
		s.NumInternal++
		if c.Left >= 0 {
			walk(c.Left, depth+1)
		}
		if c.Right >= 0 {
			walk(c.Right, depth+1)
		}
	}
	walk(0, 0)
	return s
}
