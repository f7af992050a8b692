package atriatree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/atria/pkg/atriametric"
)

// buildUnsplitTree builds a tree whose leaf threshold covers every point,
// so the root is a single terminal cluster and tree.Perm[0:n-1] is read
// directly by Validate — useful for tests that corrupt specific slots of
// the backing array and need those slots to be the ones actually checked.
func buildUnsplitTree(t *testing.T, n int, seed int64) *Tree {
	t.Helper()
	points := randomDense(t, 2, n, seed)
	tree, err := Build(points, atriametric.Euclidean{}, WithLeafThreshold(n))
	require.NoError(t, err)
	require.True(t, tree.Root().IsLeaf())
	return tree
}

func TestValidateDetectsDuplicatePermEntry(t *testing.T) {
	tree := buildUnsplitTree(t, 10, 11)
	tree.Perm[1] = tree.Perm[0]
	assert.ErrorIs(t, Validate(tree), ErrCorruptTree)
}

func TestValidateDetectsOutOfRangePermEntry(t *testing.T) {
	tree := buildUnsplitTree(t, 10, 12)
	tree.Perm[0] = 999
	assert.ErrorIs(t, Validate(tree), ErrCorruptTree)
}

func TestValidateDetectsRMaxViolation(t *testing.T) {
	tree := buildUnsplitTree(t, 10, 13)
	require.NoError(t, Validate(tree))

	tree.Clusters[0].RMax = -1
	assert.ErrorIs(t, Validate(tree), ErrCorruptTree)
}

func TestValidateDetectsSharedChildCenters(t *testing.T) {
	points := randomDense(t, 2, 50, 14)
	tree, err := Build(points, atriametric.Euclidean{}, WithLeafThreshold(4))
	require.NoError(t, err)
	require.NoError(t, Validate(tree))
	require.False(t, tree.Root().IsLeaf())

	tree.Clusters[tree.Root().Right].Center = tree.Clusters[tree.Root().Left].Center
	assert.ErrorIs(t, Validate(tree), ErrCorruptTree)
}

func TestValidateDetectsOversizedTerminal(t *testing.T) {
	tree := buildUnsplitTree(t, 10, 15)
	require.NoError(t, Validate(tree))

	tree.LeafThreshold = tree.Root().Length - 1
	assert.ErrorIs(t, Validate(tree), ErrCorruptTree)
}
