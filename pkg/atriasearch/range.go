package atriasearch

import (
	"math"
	"sort"

	"github.com/orneryd/atria/internal/atriaerr"
	"github.com/orneryd/atria/pkg/atrianeighbor"
	"github.com/orneryd/atria/pkg/atriatree"
)

// RangeSearch returns every point within radius of query, sorted by
// ascending distance. Traversal is depth-first and iterative (a stack of
// pending clusters held in ctx), unlike KNN's best-first priority queue —
// range search has no evolving bound to order by, so depth-first avoids
// paying for a heap it would not benefit from.
func RangeSearch(tree *atriatree.Tree, ctx *Context, query []float64, radius float64, opts ...QueryOption) ([]atrianeighbor.Neighbor, error) {
	if err := validateRangeArgs(tree, query, radius); err != nil {
		return nil, err
	}
	cfg := defaultQueryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var out []atrianeighbor.Neighbor
	rangeCore(tree, ctx, query, radius, cfg, func(index int, dist float64) {
		out = append(out, atrianeighbor.Neighbor{Index: index, Distance: dist})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}

// CountRange returns the number of points within radius of query, without
// materializing them. Identical traversal cost to RangeSearch; useful for
// correlation-sum / correlation-dimension style estimators that only need
// counts at a sequence of radii.
func CountRange(tree *atriatree.Tree, ctx *Context, query []float64, radius float64, opts ...QueryOption) (int, error) {
	if err := validateRangeArgs(tree, query, radius); err != nil {
		return 0, err
	}
	cfg := defaultQueryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	count := 0
	rangeCore(tree, ctx, query, radius, cfg, func(int, float64) { count++ })
	return count, nil
}

func validateRangeArgs(tree *atriatree.Tree, query []float64, radius float64) error {
	if tree == nil {
		return errorf(atriaerr.InvalidArgument, ErrNilTree, "atriasearch: range query")
	}
	if len(query) != tree.Dim() {
		return errorf(atriaerr.InvalidArgument, ErrDimensionMismatch, "atriasearch: range query dim=%d tree dim=%d", len(query), tree.Dim())
	}
	if radius < 0 {
		return errorf(atriaerr.InvalidArgument, ErrNegativeRadius, "atriasearch: range query radius=%g", radius)
	}
	return nil
}

// rangeCore walks tree depth-first, visiting every point within radius of
// query. A cluster is pruned from descent once its DMin (by the same
// bound formula KNN uses) exceeds radius — the complement of KNN's
// "explore while DMin is small enough to help", since here the bound
// to beat is fixed instead of shrinking as better neighbors are found.
func rangeCore(tree *atriatree.Tree, ctx *Context, query []float64, radius float64, cfg queryConfig, visit func(index int, dist float64)) {
	ctx.stack = ctx.stack[:0]
	ctx.stats = Stats{}

	// Center distances are computed exactly, not via the early-exit
	// DistanceWithThreshold: a sibling's bound formula subtracts the
	// other center's distance, and an early-exit value is only ever an
	// underestimate of the true distance once it exceeds the threshold,
	// which would make that subtraction overestimate the resulting
	// bound and risk pruning a subtree that does hold points in range.
	root := &tree.Clusters[0]
	d0 := tree.Metric.Distance(query, tree.Points.Point(root.Center))
	ctx.stats.PointsCompared++
	dMin0 := d0 - root.RMax
	if dMin0 < 0 {
		dMin0 = 0
	}
	if dMin0 <= radius {
		ctx.stack = append(ctx.stack, rangeFrame{0, d0, dMin0, d0 + root.RMax})
	}
	if d0 <= radius && !cfg.excludes(root.Center) {
		visit(root.Center, d0)
	}

	for len(ctx.stack) > 0 {
		f := ctx.stack[len(ctx.stack)-1]
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		ctx.stats.ClustersVisited++

		cluster := &tree.Clusters[f.idx]

		if cluster.IsLeaf() {
			ctx.stats.LeavesScanned++
			end := cluster.Start + cluster.Length
			for i := cluster.Start; i < end; i++ {
				p := tree.Perm[i]
				if cfg.excludes(p) {
					continue
				}
				dpc := tree.Dist[i]
				if math.Abs(f.dCenter-dpc) > radius {
					continue
				}
				d := tree.Metric.DistanceWithThreshold(query, tree.Points.Point(p), radius)
				ctx.stats.PointsCompared++
				if d <= radius {
					visit(p, d)
				}
			}
			continue
		}

		left, right := &tree.Clusters[cluster.Left], &tree.Clusters[cluster.Right]
		dL := tree.Metric.Distance(query, tree.Points.Point(left.Center))
		dR := tree.Metric.Distance(query, tree.Points.Point(right.Center))
		ctx.stats.PointsCompared += 2

		lMin, lMax := childBound(dL, dR, left.RMax, left.GMin, f.dMin, f.dMax)
		if dL <= radius && !cfg.excludes(left.Center) {
			visit(left.Center, dL)
		}
		if lMin <= radius {
			ctx.stack = append(ctx.stack, rangeFrame{cluster.Left, dL, lMin, lMax})
		}

		rMin, rMax := childBound(dR, dL, right.RMax, right.GMin, f.dMin, f.dMax)
		if dR <= radius && !cfg.excludes(right.Center) {
			visit(right.Center, dR)
		}
		if rMin <= radius {
			ctx.stack = append(ctx.stack, rangeFrame{cluster.Right, dR, rMin, rMax})
		}
	}
}
