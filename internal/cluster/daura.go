package cluster

// DauraStrategy repeatedly selects the eligible item with the highest
// weighted degree (the leader) and collapses its full current neighborhood
// into a cluster. A cluster is a star, not a clique: the leader's neighbors
// need not be mutually adjacent.
//
// Degree ties go to the lowest original index, mirroring array argmax
// semantics. The adjacency matrix's own diagonal convention decides whether
// an item counts itself; no artificial diagonal is imposed.
type DauraStrategy struct {
	minSize     float64
	maxClusters int
}

// NewDauraStrategy creates a leader-based strategy.
func NewDauraStrategy(minSize float64, maxClusters int) *DauraStrategy {
	return &DauraStrategy{minSize: minSize, maxClusters: maxClusters}
}

// Name returns the method tag.
func (s *DauraStrategy) Name() string { return string(MethodDaura) }

// Cluster partitions the items of the given adjacency matrix.
func (s *DauraStrategy) Cluster(adj [][]float64, weights []float64) (*Result, error) {
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
		leader := -1
		leaderDeg := 0.0
		for _, i := range a.active {
			deg := 0.0
			for _, j := range a.active {
				if adj[i][j] > 0 {
					deg += w[j]
				}
			}
			// strict > keeps the first index on ties
			if leader < 0 || deg > leaderDeg {
				leader = i
				leaderDeg = deg
			}
		}
		if leaderDeg < s.minSize {
			break
		}
		var members []int
		for _, j := range a.active {
			if adj[leader][j] > 0 {
				members = append(members, j)
			}
		}
		if len(members) == 0 {
			// Isolated leader under a zero-diagonal convention: emit it as a
			// singleton so the round always shrinks the eligible set.
			members = []int{leader}
			leaderDeg = w[leader]
		}
		clusters = append(clusters, members)
		ww = append(ww, leaderDeg)
		a.remove(members)
	}

	return &Result{Method: s.Name(), Clusters: clusters, Weights: ww}, nil
}
