package atriasearch

import (
	"math"
	"sync"

	"github.com/orneryd/atria/internal/atriaerr"
	"github.com/orneryd/atria/pkg/atrianeighbor"
	"github.com/orneryd/atria/pkg/atriatree"
)

type batchConfig struct {
	workers   int
	queryOpts []QueryOption
}

func defaultBatchConfig() batchConfig {
	return batchConfig{workers: 1}
}

// BatchOption configures KNNBatch.
type BatchOption func(*batchConfig)

// WithParallel runs the batch across workers goroutines, each with its own
// Context, splitting queries into contiguous chunks. Panics if workers is
// not positive — this is a fixed worker-pool size, not data that can be
// invalid at runtime.
func WithParallel(workers int) BatchOption {
	if workers <= 0 {
		panic("atriasearch: WithParallel requires workers > 0")
	}
	return func(c *batchConfig) { c.workers = workers }
}

// WithQueryOptions applies opts to every query in the batch.
func WithQueryOptions(opts ...QueryOption) BatchOption {
	return func(c *batchConfig) { c.queryOpts = opts }
}

// EstimatePQCapacity sizes a Context's priority queue for querying tree,
// per the mandated capacity of at least 2 * total_clusters: each popped
// internal node pushes both its children before the next pop, a net gain
// of one queue entry per expansion, so the live frontier can grow to the
// tree's leaf count before best-first pruning catches up. Sizing off tree
// depth instead undercounts badly on a wide, shallow tree and makes the
// queue overflow on valid input.
func EstimatePQCapacity(tree *atriatree.Tree) int {
	return 2*tree.Stats().NumClusters + 1
}

// KNNBatch runs KNN for every query vector in queries against tree,
// returning one result slice per query in the same order. With the
// default configuration (WithParallel(1)) it reuses a single Context
// sequentially; WithParallel(n) spawns n goroutines, each with its own
// Context, partitioning queries into contiguous chunks.
func KNNBatch(tree *atriatree.Tree, queries [][]float64, k int, opts ...BatchOption) ([][]atrianeighbor.Neighbor, error) {
	if tree == nil {
		return nil, errorf(atriaerr.InvalidArgument, ErrNilTree, "atriasearch: KNNBatch")
	}
	cfg := defaultBatchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pqCap := EstimatePQCapacity(tree)
	results := make([][]atrianeighbor.Neighbor, len(queries))

	if cfg.workers <= 1 || len(queries) <= 1 {
		ctx := NewContext(pqCap, k)
		for i, q := range queries {
			out, err := KNN(tree, ctx, q, k, cfg.queryOpts...)
			if err != nil {
				return nil, err
			}
			results[i] = append([]atrianeighbor.Neighbor(nil), out...)
		}
		return results, nil
	}

	workers := cfg.workers
	if workers > len(queries) {
		workers = len(queries)
	}
	chunk := int(math.Ceil(float64(len(queries)) / float64(workers)))

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(queries) {
			end = len(queries)
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			ctx := NewContext(pqCap, k)
			for i := start; i < end; i++ {
				out, err := KNN(tree, ctx, queries[i], k, cfg.queryOpts...)
				if err != nil {
					errs[w] = err
					return
				}
				results[i] = append([]atrianeighbor.Neighbor(nil), out...)
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
