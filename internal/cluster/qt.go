package cluster

import (
	"fmt"
	"sort"
)

// QTStrategy implements quality-threshold clustering over a distance matrix.
// Every round grows one candidate cluster per eligible seed with the growth
// kernel and keeps the best by (larger total weight, then smaller realized
// diameter); the winner is emitted and its members become ineligible.
//
// The two-level tie-break is required for reproducibility: pure weight ties
// fall back to diameter, never to seed order.
type QTStrategy struct {
	cutoff      float64
	minSize     float64
	maxClusters int
}

// NewQTStrategy creates a quality-threshold strategy. The cutoff must be
// positive.
func NewQTStrategy(cutoff, minSize float64, maxClusters int) (*QTStrategy, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidCutoff, cutoff)
	}
	return &QTStrategy{cutoff: cutoff, minSize: minSize, maxClusters: maxClusters}, nil
}

// Name returns the method tag.
func (s *QTStrategy) Name() string { return string(MethodQT) }

// Cluster partitions the items of the given distance matrix.
func (s *QTStrategy) Cluster(distances [][]float64, weights []float64) (*Result, error) {
	n, err := squareDim(distances)
	if err != nil {
		return nil, err
	}
	w, err := resolveWeights(weights, n)
	if err != nil {
		return nil, err
	}

	// The diagonal is forced to zero regardless of input, hence the copy.
	dist := copyMatrix(distances)
	for i := 0; i < n; i++ {
		dist[i][i] = 0
	}

	a := newArena(n)
	scratch := newGrowScratch(n)
	deg := make([]float64, n)
	seeds := make([]int, 0, n)
	best := make([]int, 0, n)

	var clusters [][]int
	var ww []float64

	for a.len() > 0 && !limitReached(len(clusters), s.maxClusters) {
		// Weighted degree per eligible item: sum of weights strictly within
		// the cutoff (the zero diagonal makes every item count itself).
		for _, i := range a.active {
			deg[i] = 0
			for _, j := range a.active {
				if dist[i][j] < s.cutoff {
					deg[i] += w[j]
				}
			}
		}
		seeds = append(seeds[:0], a.active...)
		sort.Slice(seeds, func(x, y int) bool {
			if deg[seeds[x]] != deg[seeds[y]] {
				return deg[seeds[x]] > deg[seeds[y]]
			}
			return seeds[x] < seeds[y]
		})

		best = best[:0]
		bestW := -1.0
		bestDiam := 0.0
		for _, seed := range seeds {
			// The degree bounds the achievable cluster weight: once it drops
			// below the round's best, no later seed can win.
			if deg[seed] < bestW {
				break
			}
			cw, diam := growCluster(dist, w, a.active, seed, s.cutoff, scratch)
			if cw > bestW || (cw == bestW && diam < bestDiam) {
				best = append(best[:0], scratch.members...)
				bestW = cw
				bestDiam = diam
			}
		}
		if len(best) == 0 || bestW < s.minSize {
			break
		}
		members := append([]int(nil), best...)
		sort.Ints(members)
		clusters = append(clusters, members)
		ww = append(ww, bestW)
		a.remove(members)
	}

	return &Result{Method: s.Name(), Clusters: clusters, Weights: ww}, nil
}
