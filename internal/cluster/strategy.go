package cluster

import (
	"errors"
	"fmt"
)

// Method identifies a clustering strategy.
type Method string

const (
	MethodMaxClique Method = "max_clique" // maximum-weight clique extraction
	MethodDaura     Method = "daura"      // leader-based neighborhoods
	MethodQT        Method = "qt"         // quality-threshold growth
)

// Configuration errors surfaced at strategy-construction time.
var (
	ErrUnknownMethod = errors.New("unknown clustering method")
	ErrInvalidCutoff = errors.New("qt requires a positive distance cutoff")
)

// Strategy groups the items described by a pairwise matrix into clusters.
// MaxClique and Daura interpret the matrix as adjacency (any value > 0 is an
// edge); QT interprets it as distances. Implementations take defensive copies
// and never mutate the caller's slices.
type Strategy interface {
	// Cluster partitions the items of the given N x N matrix. The optional
	// weight vector must have length N; nil means unit weights.
	Cluster(matrix [][]float64, weights []float64) (*Result, error)
	// Name returns the method tag recorded in results.
	Name() string
}

// Config selects and parameterizes a strategy.
type Config struct {
	Method Method
	// Cutoff is the QT distance threshold (items closer than Cutoff may
	// co-cluster). Ignored by the adjacency-based strategies.
	Cutoff float64
	// MinSize is the cluster-weight floor: the run stops before emitting a
	// cluster whose total weight falls below it.
	MinSize float64
	// MaxClusters caps the number of emitted clusters. Negative means
	// unlimited; zero legitimately yields an empty result.
	MaxClusters int
	// CliqueBackend selects the maximal-clique enumerator for MaxClique.
	// Empty selects the default backend.
	CliqueBackend CliqueBackend
}

// NewStrategy creates the strategy described by cfg. Unknown methods and
// unavailable clique backends are configuration errors reported here, before
// any clustering work begins.
func NewStrategy(cfg Config) (Strategy, error) {
	switch cfg.Method {
	case MethodMaxClique:
		return NewMaxCliqueStrategy(cfg.MinSize, cfg.MaxClusters, cfg.CliqueBackend)
	case MethodQT:
		return NewQTStrategy(cfg.Cutoff, cfg.MinSize, cfg.MaxClusters)
	case MethodDaura:
		return NewDauraStrategy(cfg.MinSize, cfg.MaxClusters), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// limitReached reports whether emitting one more cluster would exceed the
// maxClusters cap (negative caps never limit).
func limitReached(emitted, maxClusters int) bool {
	return maxClusters >= 0 && emitted >= maxClusters
}
