package atriasearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPQOrdersByAscendingDMin(t *testing.T) {
	pq := newSearchPQ(8)
	for _, d := range []float64{5, 1, 3, 2, 4} {
		require.NoError(t, pq.push(SearchItem{DMin: d}))
	}

	var got []float64
	for pq.len() > 0 {
		item, ok := pq.pop()
		require.True(t, ok)
		got = append(got, item.DMin)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestSearchPQCapacityExceeded(t *testing.T) {
	pq := newSearchPQ(2)
	require.NoError(t, pq.push(SearchItem{DMin: 1}))
	require.NoError(t, pq.push(SearchItem{DMin: 2}))
	err := pq.push(SearchItem{DMin: 3})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestSearchPQPopEmpty(t *testing.T) {
	pq := newSearchPQ(2)
	_, ok := pq.pop()
	assert.False(t, ok)
}

func TestChildBoundBallBoundWins(t *testing.T) {
	// dX=10, rMax=4 -> local1=6. dY=2, gMin=0 -> local2=(10-2+0)/2=4. Ball wins.
	dMin, dMax := childBound(10, 2, 4, 0, 0, 1000)
	assert.Equal(t, 6.0, dMin)
	assert.Equal(t, 14.0, dMax)
}

func TestChildBoundGapBoundWins(t *testing.T) {
	// dX=1, rMax=8 -> local1=0 (clamped). dY=5, gMin=6 -> local2=(1-5+6)/2=1.
	dMin, _ := childBound(1, 5, 8, 6, 0, 1000)
	assert.Equal(t, 1.0, dMin)
}

func TestChildBoundClampsToParentBounds(t *testing.T) {
	dMin, dMax := childBound(3, 0, 10, 0, 5, 8)
	assert.Equal(t, 5.0, dMin) // parent's own DMin beats both local bounds
	assert.Equal(t, 8.0, dMax)
}

func TestChildBoundNeverNegative(t *testing.T) {
	dMin, _ := childBound(3, 100, 10, 0, 0, 1000)
	assert.GreaterOrEqual(t, dMin, 0.0)
}
