package atriasearch

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orneryd/atria/pkg/atriametric"
	"github.com/orneryd/atria/pkg/atriapoints"
	"github.com/orneryd/atria/pkg/atrianeighbor"
	"github.com/orneryd/atria/pkg/atriatree"
)

func randomDense(t *testing.T, dim, n int, seed int64) *atriapoints.Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, dim*n)
	for i := range data {
		data[i] = r.Float64()*20 - 10
	}
	d, err := atriapoints.NewDense(dim, n, data)
	require.NoError(t, err)
	return d
}

func buildTestTree(t *testing.T, dim, n int, seed int64) (*atriatree.Tree, *atriapoints.Dense) {
	t.Helper()
	points := randomDense(t, dim, n, seed)
	tree, err := atriatree.Build(points, atriametric.Euclidean{}, atriatree.WithLeafThreshold(6))
	require.NoError(t, err)
	return tree, points
}

func bruteForceKNN(points *atriapoints.Dense, query []float64, k int) []atrianeighbor.Neighbor {
	m := atriametric.Euclidean{}
	all := make([]atrianeighbor.Neighbor, points.Len())
	for i := 0; i < points.Len(); i++ {
		all[i] = atrianeighbor.Neighbor{Index: i, Distance: m.Distance(query, points.Point(i))}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Distance < all[j].Distance })
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

func bruteForceRange(points *atriapoints.Dense, query []float64, radius float64) []atrianeighbor.Neighbor {
	m := atriametric.Euclidean{}
	var out []atrianeighbor.Neighbor
	for i := 0; i < points.Len(); i++ {
		d := m.Distance(query, points.Point(i))
		if d <= radius {
			out = append(out, atrianeighbor.Neighbor{Index: i, Distance: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}
