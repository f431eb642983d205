package cluster

import (
	"errors"
	"fmt"
)

// Input-shape errors reported before any clustering work begins.
var (
	ErrNonSquareMatrix = errors.New("matrix must be square")
	ErrWeightLength    = errors.New("weight vector length must equal matrix dimension")
)

// squareDim verifies that m is a square N x N matrix and returns N.
func squareDim(m [][]float64) (int, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}
	return n, nil
}

// resolveWeights validates the optional weight vector against dimension n and
// returns a copy that strategies may consume freely. A nil vector defaults to
// unit weights, so weighted size degenerates to a plain member count.
func resolveWeights(weights []float64, n int) ([]float64, error) {
	w := make([]float64, n)
	if weights == nil {
		for i := range w {
			w[i] = 1
		}
		return w, nil
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%w: got %d weights for %d items", ErrWeightLength, len(weights), n)
	}
	copy(w, weights)
	return w, nil
}

// copyMatrix returns a defensive deep copy of m.
func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// arena tracks the original item indices still eligible for clustering.
// The matrix itself is never shrunk; strategies translate between working
// positions and original indices through the arena, which shrinks
// monotonically as clusters are emitted.
type arena struct {
	active []int
	member map[int]bool // scratch for removal
}

func newArena(n int) *arena {
	a := &arena{
		active: make([]int, n),
		member: make(map[int]bool, n),
	}
	for i := range a.active {
		a.active[i] = i
	}
	return a
}

func (a *arena) len() int { return len(a.active) }

// remove drops the given original indices from the eligible set, preserving
// the ascending order of the survivors.
func (a *arena) remove(indices []int) {
	for _, i := range indices {
		a.member[i] = true
	}
	kept := a.active[:0]
	for _, i := range a.active {
		if !a.member[i] {
			kept = append(kept, i)
		}
	}
	a.active = kept
	for _, i := range indices {
		delete(a.member, i)
	}
}
