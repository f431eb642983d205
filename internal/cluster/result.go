package cluster

import (
	"fmt"
	"strings"
)

// Result is the common outcome of a clustering run. It is constructed once at
// the end of a strategy call and never mutated afterwards.
type Result struct {
	// Method is the strategy tag: "max_clique", "daura" or "qt".
	Method string
	// Clusters holds the members of each cluster as original item indices.
	// Order within a cluster is not significant.
	Clusters [][]int
	// Weights holds one entry per cluster: the sum of its member weights
	// (plain member count when the run was unweighted).
	Weights []float64
}

// NumClusters returns the number of emitted clusters.
func (r *Result) NumClusters() int {
	return len(r.Clusters)
}

// NumItems returns the total number of clustered items across all clusters.
func (r *Result) NumItems() int {
	total := 0
	for _, c := range r.Clusters {
		total += len(c)
	}
	return total
}

// String renders a labeled summary of the result.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ClusteringResult{Method: %s, Clusters: %d}", r.Method, len(r.Clusters))
	for i, c := range r.Clusters {
		fmt.Fprintf(&b, "\n  #%d weight=%g size=%d members=%v", i, r.Weights[i], len(c), c)
	}
	return b.String()
}
