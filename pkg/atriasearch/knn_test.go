package atriasearch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKNNMatchesBruteForce(t *testing.T) {
	tree, points := buildTestTree(t, 4, 300, 42)
	ctx := NewContext(EstimatePQCapacity(tree), 5)

	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		query := make([]float64, 4)
		for i := range query {
			query[i] = r.Float64()*20 - 10
		}
		got, err := KNN(tree, ctx, query, 5)
		require.NoError(t, err)
		want := bruteForceKNN(points, query, 5)

		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i].Distance, got[i].Distance, 1e-9)
		}
	}
}

func TestKNNByIndexExcludesSelf(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 100, 1)
	ctx := NewContext(EstimatePQCapacity(tree), 5)

	got, err := KNNByIndex(tree, ctx, 10, 5)
	require.NoError(t, err)
	for _, n := range got {
		assert.NotEqual(t, 10, n.Index)
	}
}

func TestKNNWithExcludeRange(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 100, 2)
	ctx := NewContext(EstimatePQCapacity(tree), 5)

	query := tree.Points.Point(20)
	got, err := KNN(tree, ctx, query, 5, WithExcludeRange(15, 25))
	require.NoError(t, err)
	for _, n := range got {
		assert.False(t, n.Index >= 15 && n.Index < 25)
	}
}

func TestKNNContextReuseIsIdempotent(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 150, 3)
	ctx := NewContext(EstimatePQCapacity(tree), 4)
	query := []float64{1, 2, 3}

	first, err := KNN(tree, ctx, query, 4)
	require.NoError(t, err)
	second, err := KNN(tree, ctx, query, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKNNChangingKResizesHeapNotQueue(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 150, 4)
	ctx := NewContext(EstimatePQCapacity(tree), 2)
	query := []float64{0, 0, 0}

	_, err := KNN(tree, ctx, query, 2)
	require.NoError(t, err)
	pqCapBefore := ctx.PQCapacity()

	got, err := KNN(tree, ctx, query, 10)
	require.NoError(t, err)
	assert.Len(t, got, 10)
	assert.Equal(t, pqCapBefore, ctx.PQCapacity())
	assert.Equal(t, 10, ctx.K())
}

func TestKNNErrors(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 20, 5)
	ctx := NewContext(EstimatePQCapacity(tree), 3)

	_, err := KNN(nil, ctx, []float64{1, 2, 3}, 3)
	assert.ErrorIs(t, err, ErrNilTree)

	_, err = KNN(tree, ctx, []float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = KNN(tree, ctx, []float64{1, 2}, 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestKNNByIndexIndexOutOfRange(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 20, 6)
	ctx := NewContext(EstimatePQCapacity(tree), 3)

	_, err := KNNByIndex(tree, ctx, -1, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = KNNByIndex(tree, ctx, 1000, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestKNNCapacityExceededIsReported(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 500, 8)
	ctx := NewContext(1, 5) // deliberately too small
	query := []float64{0, 0, 0}

	_, err := KNN(tree, ctx, query, 5)
	if err != nil {
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	}
}

func TestKNNWithEpsilonVisitsNoMoreClustersThanExact(t *testing.T) {
	tree, _ := buildTestTree(t, 4, 400, 9)
	exactCtx := NewContext(EstimatePQCapacity(tree), 5)
	approxCtx := NewContext(EstimatePQCapacity(tree), 5)
	query := []float64{1, -1, 2, -2}

	_, err := KNN(tree, exactCtx, query, 5)
	require.NoError(t, err)
	_, err = KNN(tree, approxCtx, query, 5, WithEpsilon(0.5))
	require.NoError(t, err)

	assert.LessOrEqual(t, approxCtx.Stats().ClustersVisited, exactCtx.Stats().ClustersVisited)
}

func TestWithEpsilonPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { WithEpsilon(-0.1) })
}

func TestWithExcludeRangeInvertedIsEmptyExclusion(t *testing.T) {
	tree, _ := buildTestTree(t, 3, 100, 40)
	exactCtx := NewContext(EstimatePQCapacity(tree), 5)
	invertedCtx := NewContext(EstimatePQCapacity(tree), 5)
	query := tree.Points.Point(20)

	want, err := KNN(tree, exactCtx, query, 5)
	require.NoError(t, err)
	got, err := KNN(tree, invertedCtx, query, 5, WithExcludeRange(10, 5))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEstimatePQCapacityIsPositive(t *testing.T) {
	tree, _ := buildTestTree(t, 2, 50, 10)
	assert.GreaterOrEqual(t, EstimatePQCapacity(tree), 16)
}
