package cluster

import (
	"sort"
)

// MaxCliqueStrategy repeatedly extracts the maximum-weight maximal clique
// from the similarity graph. Each round enumerates the maximal cliques of the
// current induced subgraph, keeps the heaviest one, and removes its members;
// the search space strictly shrinks every round.
//
// Weight ties between maximal cliques are broken by the lexicographically
// smallest sorted member-index sequence, so the emitted clustering does not
// depend on the enumeration order of the selected backend.
type MaxCliqueStrategy struct {
	minSize     float64
	maxClusters int
	enum        CliqueEnumerator
}

// NewMaxCliqueStrategy creates a max-clique strategy. An unknown backend is a
// configuration error reported here.
func NewMaxCliqueStrategy(minSize float64, maxClusters int, backend CliqueBackend) (*MaxCliqueStrategy, error) {
	enum, err := newCliqueEnumerator(backend)
	if err != nil {
		return nil, err
	}
	return &MaxCliqueStrategy{
		minSize:     minSize,
		maxClusters: maxClusters,
		enum:        enum,
	}, nil
}

// Name returns the method tag.
func (s *MaxCliqueStrategy) Name() string { return string(MethodMaxClique) }

// Backend returns the name of the clique enumerator in use.
func (s *MaxCliqueStrategy) Backend() string { return s.enum.Name() }

// Cluster partitions the items of the given adjacency matrix.
func (s *MaxCliqueStrategy) Cluster(adj [][]float64, weights []float64) (*Result, error) {
	n, err := squareDim(adj)
	if err != nil {
		return nil, err
	}
	w, err := resolveWeights(weights, n)
	if err != nil {
		return nil, err
	}

	a := newArena(n)
	var clusters [][]int
	var ww []float64

	for a.len() > 0 && !limitReached(len(clusters), s.maxClusters) {
		var best []int
		bestW := -1.0
		s.enum.EnumerateMaximalCliques(adj, a.active, func(clique []int) {
			cw := 0.0
			for _, i := range clique {
				cw += w[i]
			}
			if cw < bestW {
				return
			}
			members := append([]int(nil), clique...)
			sort.Ints(members)
			if cw > bestW || best == nil || lexLess(members, best) {
				bestW = cw
				best = members
			}
		})
		if best == nil || bestW < s.minSize {
			break
		}
		clusters = append(clusters, best)
		ww = append(ww, bestW)
		a.remove(best)
	}

	return &Result{Method: s.Name(), Clusters: clusters, Weights: ww}, nil
}

// lexLess compares two sorted index sequences lexicographically.
func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
