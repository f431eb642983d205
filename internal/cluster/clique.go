package cluster

import (
	"errors"
	"fmt"
	"sort"
)

// CliqueBackend names a maximal-clique enumerator implementation.
type CliqueBackend string

const (
	// BackendBronKerbosch is the default Bron-Kerbosch enumerator with
	// pivoting.
	BackendBronKerbosch CliqueBackend = "bron_kerbosch"
	// BackendDegeneracy runs Bron-Kerbosch in degeneracy order, which bounds
	// the recursion depth on sparse graphs.
	BackendDegeneracy CliqueBackend = "degeneracy"
)

// ErrUnknownBackend is returned when an unavailable clique backend is
// requested. Backend selection failures surface at construction time, never
// mid-algorithm.
var ErrUnknownBackend = errors.New("unknown clique backend")

// CliqueEnumerator enumerates the maximal cliques of the subgraph induced by
// a vertex set. The slice passed to visit is reused between calls; visitors
// must copy it if they keep it.
type CliqueEnumerator interface {
	EnumerateMaximalCliques(adj [][]float64, vertices []int, visit func(clique []int))
	Name() string
}

func newCliqueEnumerator(backend CliqueBackend) (CliqueEnumerator, error) {
	switch backend {
	case "", BackendBronKerbosch:
		return bronKerboschEnumerator{}, nil
	case BackendDegeneracy:
		return degeneracyEnumerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// edge reports whether i and j are adjacent. Any positive entry is an edge;
// the diagonal never is.
func edge(adj [][]float64, i, j int) bool {
	return i != j && adj[i][j] > 0
}

type bronKerboschEnumerator struct{}

func (bronKerboschEnumerator) Name() string { return string(BackendBronKerbosch) }

func (bronKerboschEnumerator) EnumerateMaximalCliques(adj [][]float64, vertices []int, visit func([]int)) {
	p := append([]int(nil), vertices...)
	sort.Ints(p)
	bkPivot(adj, nil, p, nil, visit)
}

// bkPivot is the classic Bron-Kerbosch recursion with pivoting. r is the
// clique under construction, p the candidates, x the excluded vertices; p and
// x are kept sorted ascending so the recursion order is deterministic.
func bkPivot(adj [][]float64, r, p, x []int, visit func([]int)) {
	if len(p) == 0 && len(x) == 0 {
		visit(r)
		return
	}
	u := choosePivot(adj, p, x)
	cand := make([]int, 0, len(p))
	for _, v := range p {
		if !edge(adj, u, v) {
			cand = append(cand, v)
		}
	}
	for _, v := range cand {
		bkPivot(adj,
			append(r[:len(r):len(r)], v),
			neighborsIn(adj, p, v),
			neighborsIn(adj, x, v),
			visit)
		p = removeSorted(p, v)
		x = insertSorted(x, v)
	}
}

// choosePivot picks the vertex of p union x with the most neighbors in p,
// lowest index on ties.
func choosePivot(adj [][]float64, p, x []int) int {
	best := -1
	bestDeg := -1
	consider := func(u int) {
		deg := 0
		for _, v := range p {
			if edge(adj, u, v) {
				deg++
			}
		}
		if deg > bestDeg || (deg == bestDeg && u < best) {
			bestDeg = deg
			best = u
		}
	}
	for _, u := range p {
		consider(u)
	}
	for _, u := range x {
		consider(u)
	}
	return best
}

func neighborsIn(adj [][]float64, set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if edge(adj, u, v) {
			out = append(out, u)
		}
	}
	return out
}

func removeSorted(set []int, v int) []int {
	i := sort.SearchInts(set, v)
	if i < len(set) && set[i] == v {
		return append(set[:i:i], set[i+1:]...)
	}
	return set
}

func insertSorted(set []int, v int) []int {
	i := sort.SearchInts(set, v)
	out := make([]int, 0, len(set)+1)
	out = append(out, set[:i]...)
	out = append(out, v)
	return append(out, set[i:]...)
}

type degeneracyEnumerator struct{}

func (degeneracyEnumerator) Name() string { return string(BackendDegeneracy) }

// EnumerateMaximalCliques processes vertices in degeneracy order and runs the
// pivoting recursion on each vertex's later neighbors. The output clique set
// is identical to the default backend; only the traversal differs.
func (degeneracyEnumerator) EnumerateMaximalCliques(adj [][]float64, vertices []int, visit func([]int)) {
	order := degeneracyOrder(adj, vertices)
	rank := make(map[int]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	for _, v := range order {
		var p, x []int
		for _, u := range vertices {
			if !edge(adj, u, v) {
				continue
			}
			if rank[u] > rank[v] {
				p = insertSorted(p, u)
			} else {
				x = insertSorted(x, u)
			}
		}
		bkPivot(adj, []int{v}, p, x, visit)
	}
}

// degeneracyOrder repeatedly removes the minimum-degree vertex (lowest index
// on ties) from the induced subgraph.
func degeneracyOrder(adj [][]float64, vertices []int) []int {
	remaining := append([]int(nil), vertices...)
	sort.Ints(remaining)
	deg := make(map[int]int, len(remaining))
	for _, v := range remaining {
		for _, u := range remaining {
			if edge(adj, u, v) {
				deg[v]++
			}
		}
	}
	order := make([]int, 0, len(remaining))
	for len(remaining) > 0 {
		mi := 0
		for i := 1; i < len(remaining); i++ {
			if deg[remaining[i]] < deg[remaining[mi]] {
				mi = i
			}
		}
		v := remaining[mi]
		order = append(order, v)
		remaining = append(remaining[:mi], remaining[mi+1:]...)
		for _, u := range remaining {
			if edge(adj, u, v) {
				deg[u]--
			}
		}
	}
	return order
}
