package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positionsDistance builds the pairwise distance matrix of 1-D positions.
func positionsDistance(pos []float64) [][]float64 {
	n := len(pos)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Abs(pos[i] - pos[j])
		}
	}
	return dist
}

func TestQTDiameterTieBreak(t *testing.T) {
	// Two candidate clusters of equal weight 2; the tighter pair {2,3}
	// (diameter 0.2) must be emitted before {0,1} (diameter 0.5).
	dist := positionsDistance([]float64{0.0, 0.5, 1.0, 1.2})

	s, err := NewQTStrategy(0.6, 0, -1)
	require.NoError(t, err)
	res, err := s.Cluster(dist, nil)
	require.NoError(t, err)

	assert.Equal(t, "qt", res.Method)
	assert.Equal(t, []float64{2, 2}, res.Weights)
	require.Len(t, res.Clusters, 2)
	assert.Equal(t, []int{2, 3}, res.Clusters[0])
	assert.Equal(t, []int{0, 1}, res.Clusters[1])
}

func TestQTCutoffBoundsDiameter(t *testing.T) {
	// A chain within single-link reach: growth is diameter-bounded, so the
	// far end of the chain cannot ride in on transitivity.
	dist := positionsDistance([]float64{0.0, 0.4, 0.8, 1.2})

	s, err := NewQTStrategy(0.5, 0, -1)
	require.NoError(t, err)
	res, err := s.Cluster(dist, nil)
	require.NoError(t, err)

	for i, c := range res.Clusters {
		for _, a := range c {
			for _, b := range c {
				assert.Less(t, dist[a][b], 0.5, "cluster %d spans beyond the cutoff", i)
			}
		}
	}
}

func TestQTWeightedSeedSelection(t *testing.T) {
	// The heavy pair outweighs the three-member unit cluster.
	dist := positionsDistance([]float64{0, 1, 2, 10, 11})
	weights := []float64{1, 1, 1, 5, 5}

	s, err := NewQTStrategy(3, 0, -1)
	require.NoError(t, err)
	res, err := s.Cluster(dist, weights)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 2)
	assert.Equal(t, []int{3, 4}, res.Clusters[0])
	assert.Equal(t, []float64{10, 3}, res.Weights)
}

func TestQTForcesDiagonalToZero(t *testing.T) {
	dist := positionsDistance([]float64{0, 0.1, 5})
	for i := range dist {
		dist[i][i] = 99 // caller-supplied self-distance is ignored
	}

	s, err := NewQTStrategy(1, 0, -1)
	require.NoError(t, err)
	res, err := s.Cluster(dist, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 1}, res.Weights)
	// the input matrix keeps its diagonal
	assert.Equal(t, 99.0, dist[0][0])
}

func TestQTInvalidCutoff(t *testing.T) {
	_, err := NewQTStrategy(0, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidCutoff)
	_, err = NewQTStrategy(-1, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidCutoff)
}

func TestQTSingletonFallout(t *testing.T) {
	// Items beyond the cutoff from everything end up as singletons.
	dist := positionsDistance([]float64{0, 0.1, 50})

	s, err := NewQTStrategy(1, 0, -1)
	require.NoError(t, err)
	res, err := s.Cluster(dist, nil)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 2)
	assert.Equal(t, []int{0, 1}, res.Clusters[0])
	assert.Equal(t, []int{2}, res.Clusters[1])
}

func TestGrowClusterOrderAndDiameter(t *testing.T) {
	dist := positionsDistance([]float64{0.0, 0.5, 1.0, 1.2})
	weights := []float64{1, 1, 1, 1}
	scratch := newGrowScratch(4)

	// Seed 2 with cutoff 0.6: accepts 3 (0.2) and then stops because 1 would
	// stretch the diameter to 0.7.
	w, diam := growCluster(dist, weights, []int{0, 1, 2, 3}, 2, 0.6, scratch)
	assert.Equal(t, 2.0, w)
	assert.InDelta(t, 0.2, diam, 1e-12)
	assert.Equal(t, []int{2, 3}, scratch.members)

	// Seed 1: both neighbors sit at 0.5, the lower index is accepted first
	// and the second stretches past the cutoff.
	w, diam = growCluster(dist, weights, []int{0, 1, 2, 3}, 1, 0.6, scratch)
	assert.Equal(t, 2.0, w)
	assert.InDelta(t, 0.5, diam, 1e-12)
	assert.Equal(t, []int{1, 0}, scratch.members)
}

func TestGrowClusterWeightTieBreak(t *testing.T) {
	// Equidistant candidates: the heavier one is accepted first.
	dist := [][]float64{
		{0, 0.3, 0.3},
		{0.3, 0, 0.4},
		{0.3, 0.4, 0},
	}
	weights := []float64{1, 1, 2}
	scratch := newGrowScratch(3)

	w, diam := growCluster(dist, weights, []int{0, 1, 2}, 0, 0.5, scratch)
	assert.Equal(t, 4.0, w)
	assert.InDelta(t, 0.4, diam, 1e-12)
	assert.Equal(t, []int{0, 2, 1}, scratch.members, "heavier candidate should be accepted first")
}
