package atriasearch

import (
	"math"

	"github.com/orneryd/atria/internal/atriaerr"
	"github.com/orneryd/atria/pkg/atrianeighbor"
	"github.com/orneryd/atria/pkg/atriatree"
)

// KNN finds the k nearest neighbors of query in tree, using ctx as scratch
// state. The returned slice is sorted by ascending distance and is only
// valid until the next call that reuses ctx.
func KNN(tree *atriatree.Tree, ctx *Context, query []float64, k int, opts ...QueryOption) ([]atrianeighbor.Neighbor, error) {
	if tree == nil {
		return nil, errorf(atriaerr.InvalidArgument, ErrNilTree, "atriasearch: KNN")
	}
	if k <= 0 {
		return nil, errorf(atriaerr.InvalidArgument, ErrInvalidK, "atriasearch: KNN got k=%d", k)
	}
	if len(query) != tree.Dim() {
		return nil, errorf(atriaerr.InvalidArgument, ErrDimensionMismatch, "atriasearch: KNN query dim=%d tree dim=%d", len(query), tree.Dim())
	}

	cfg := defaultQueryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := knnCore(tree, ctx, query, k, cfg); err != nil {
		return nil, err
	}
	return ctx.heap.Finish(), nil
}

// KNNByIndex finds the k nearest neighbors of the tree's own point at
// queryIndex, automatically excluding that point itself from the results
// (leave-one-out). Useful for cross-validation and for estimating a
// series' correlation dimension from its own embedding.
func KNNByIndex(tree *atriatree.Tree, ctx *Context, queryIndex, k int, opts ...QueryOption) ([]atrianeighbor.Neighbor, error) {
	if tree == nil {
		return nil, errorf(atriaerr.InvalidArgument, ErrNilTree, "atriasearch: KNNByIndex")
	}
	if queryIndex < 0 || queryIndex >= tree.N() {
		return nil, errorf(atriaerr.InvalidArgument, ErrIndexOutOfRange, "atriasearch: KNNByIndex index=%d n=%d", queryIndex, tree.N())
	}
	opts = append([]QueryOption{WithExcludeRange(queryIndex, queryIndex)}, opts...)
	// A PointSet's Point(queryIndex) may alias internal storage that a later
	// Point call could reuse (the PointSet contract allows it, though Dense
	// and TimeDelayEmbedded do not); knnCore calls Point again for every
	// cluster center it visits, so the query is copied out first.
	query := append(make([]float64, 0, tree.Dim()), tree.Points.Point(queryIndex)...)
	return KNN(tree, ctx, query, k, opts...)
}

// knnCore runs the best-first traversal shared by KNN and KNNByIndex.
//
// Early termination pops the item with the smallest DMin; once the heap
// is full and the k-th best distance already beats (1+epsilon) times
// that DMin, the loop breaks entirely rather than merely skipping the
// item — the queue's ascending-DMin order guarantees nothing popped
// afterward could have a smaller DMin, so nothing later can help either.
func knnCore(tree *atriatree.Tree, ctx *Context, query []float64, k int, cfg queryConfig) error {
	ctx.reset(k)

	root := &tree.Clusters[0]
	d0 := tree.Metric.Distance(query, tree.Points.Point(root.Center))
	ctx.stats.PointsCompared++
	dMin0 := d0 - root.RMax
	if dMin0 < 0 {
		dMin0 = 0
	}
	if err := ctx.pq.push(SearchItem{Cluster: 0, DCenter: d0, DMin: dMin0, DMax: d0 + root.RMax}); err != nil {
		return err
	}

	slack := 1 + cfg.epsilon

	for ctx.pq.len() > 0 {
		item, _ := ctx.pq.pop()
		if ctx.heap.Len() == k && ctx.heap.HighDist() < slack*item.DMin {
			break
		}
		ctx.stats.ClustersVisited++

		cluster := &tree.Clusters[item.Cluster]
		if !cfg.excludes(cluster.Center) {
			ctx.heap.TryInsert(atrianeighbor.Neighbor{Index: cluster.Center, Distance: item.DCenter})
		}

		if cluster.IsLeaf() {
			ctx.stats.LeavesScanned++
			end := cluster.Start + cluster.Length
			if cluster.RMax == 0 {
				// Every non-center point under this cluster coincides
				// with its center: item.DCenter is every point's exact
				// distance to the query, no further computation needed.
				for i := cluster.Start; i < end; i++ {
					p := tree.Perm[i]
					if cfg.excludes(p) {
						continue
					}
					ctx.heap.TryInsert(atrianeighbor.Neighbor{Index: p, Distance: item.DCenter})
				}
				continue
			}
			for i := cluster.Start; i < end; i++ {
				p := tree.Perm[i]
				if cfg.excludes(p) {
					continue
				}
				if ctx.heap.Len() == k {
					lowerBound := math.Abs(item.DCenter - tree.Dist[i])
					if ctx.heap.HighDist() <= lowerBound {
						continue
					}
				}
				d := tree.Metric.DistanceWithThreshold(query, tree.Points.Point(p), ctx.heap.HighDist())
				ctx.stats.PointsCompared++
				ctx.heap.TryInsert(atrianeighbor.Neighbor{Index: p, Distance: d})
			}
			continue
		}

		left, right := &tree.Clusters[cluster.Left], &tree.Clusters[cluster.Right]
		dL := tree.Metric.Distance(query, tree.Points.Point(left.Center))
		dR := tree.Metric.Distance(query, tree.Points.Point(right.Center))
		ctx.stats.PointsCompared += 2

		lMin, lMax := childBound(dL, dR, left.RMax, left.GMin, item.DMin, item.DMax)
		if err := ctx.pq.push(SearchItem{Cluster: cluster.Left, DCenter: dL, DMin: lMin, DMax: lMax}); err != nil {
			return err
		}
		rMin, rMax := childBound(dR, dL, right.RMax, right.GMin, item.DMin, item.DMax)
		if err := ctx.pq.push(SearchItem{Cluster: cluster.Right, DCenter: dR, DMin: rMin, DMax: rMax}); err != nil {
			return err
		}
	}
	return nil
}
