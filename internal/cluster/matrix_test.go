package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareDim(t *testing.T) {
	n, err := squareDim([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = squareDim(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = squareDim([][]float64{{0, 1, 2}, {1, 0}, {2, 0, 0}})
	assert.ErrorIs(t, err, ErrNonSquareMatrix)
}

func TestResolveWeights(t *testing.T) {
	w, err := resolveWeights(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, w)

	orig := []float64{2, 3, 4}
	w, err = resolveWeights(orig, 3)
	require.NoError(t, err)
	assert.Equal(t, orig, w)
	w[0] = 99
	assert.Equal(t, 2.0, orig[0], "resolveWeights must copy")

	_, err = resolveWeights([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, ErrWeightLength)
}

func TestArenaRemove(t *testing.T) {
	a := newArena(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.active)

	a.remove([]int{1, 3})
	assert.Equal(t, []int{0, 2, 4}, a.active)

	a.remove([]int{0, 2, 4})
	assert.Equal(t, 0, a.len())
}

func TestNewStrategyFactory(t *testing.T) {
	s, err := NewStrategy(Config{Method: MethodDaura, MaxClusters: -1})
	require.NoError(t, err)
	assert.Equal(t, "daura", s.Name())

	s, err = NewStrategy(Config{Method: MethodMaxClique, MaxClusters: -1})
	require.NoError(t, err)
	assert.Equal(t, "max_clique", s.Name())

	s, err = NewStrategy(Config{Method: MethodQT, Cutoff: 1, MaxClusters: -1})
	require.NoError(t, err)
	assert.Equal(t, "qt", s.Name())

	_, err = NewStrategy(Config{Method: "kmeans"})
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, err = NewStrategy(Config{Method: MethodQT, Cutoff: 0})
	assert.ErrorIs(t, err, ErrInvalidCutoff)

	_, err = NewStrategy(Config{Method: MethodMaxClique, CliqueBackend: "gpu"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestResultSummary(t *testing.T) {
	r := &Result{
		Method:   "qt",
		Clusters: [][]int{{0, 1}, {2}},
		Weights:  []float64{2, 1},
	}
	assert.Equal(t, 2, r.NumClusters())
	assert.Equal(t, 3, r.NumItems())
	assert.Contains(t, r.String(), "qt")
	assert.Contains(t, r.String(), "weight=2")
}
