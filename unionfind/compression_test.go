package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_CompressesWholePath builds a deliberately deep chain by hand and
// checks that a single Find re-points every visited vertex directly at the
// root. White-box: inspects the parent slice.
func TestFind_CompressesWholePath(t *testing.T) {
	const n = 64
	d := New(n)
	// Chain: parent[i] = i-1, root is 0. Bypasses Union on purpose — union
	// by rank would never build a path this deep.
	for i := 1; i < n; i++ {
		d.parent[i] = i - 1
	}

	root, err := d.Find(n - 1)
	require.NoError(t, err)
	require.Equal(t, 0, root)

	for i := 0; i < n; i++ {
		assert.Equal(t, 0, d.parent[i], "vertex %d must point straight at the root after compression", i)
	}
}

// TestUnion_RankGrowsOnlyOnTies verifies rank bookkeeping: rank increments
// exactly when two equal-rank roots merge.
func TestUnion_RankGrowsOnlyOnTies(t *testing.T) {
	d := New(4)

	_, err := d.Union(0, 1) // equal ranks: 0 becomes rank 1
	require.NoError(t, err)
	assert.Equal(t, 1, d.rank[0])

	_, err = d.Union(0, 2) // rank 1 vs rank 0: no growth
	require.NoError(t, err)
	assert.Equal(t, 1, d.rank[0])

	_, err = d.Union(2, 3) // 2's root is 0 (rank 1) vs 3 (rank 0): no growth
	require.NoError(t, err)
	assert.Equal(t, 1, d.rank[0])
}
