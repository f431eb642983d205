package service

import (
	"context"
	"errors"
	"sort"

	"github.com/mdclust/mdclust/domain"
	"github.com/mdclust/mdclust/internal/cluster"
)

// ClusterServiceImpl implements the domain.ClusterService interface by
// bridging requests to the clustering engine.
type ClusterServiceImpl struct{}

// NewClusterService creates a new cluster service
func NewClusterService() *ClusterServiceImpl {
	return &ClusterServiceImpl{}
}

// Cluster runs the requested strategy over the given matrix and converts the
// engine result into a response.
func (s *ClusterServiceImpl) Cluster(ctx context.Context, req *domain.ClusterRequest, matrix [][]float64, weights []float64) (*domain.ClusterResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewClusteringError("clustering cancelled", err)
	}

	strategy, err := cluster.NewStrategy(cluster.Config{
		Method:        cluster.Method(req.Method),
		Cutoff:        req.Cutoff,
		MinSize:       req.MinSize,
		MaxClusters:   req.MaxClusters,
		CliqueBackend: cluster.CliqueBackend(req.CliqueBackend),
	})
	if err != nil {
		return nil, s.translateConfigError(req, err)
	}

	result, err := strategy.Cluster(matrix, weights)
	if err != nil {
		return nil, domain.NewInvalidInputError("clustering input rejected", err)
	}

	clusters := make([]*domain.Cluster, len(result.Clusters))
	for i, members := range result.Clusters {
		m := append([]int(nil), members...)
		sort.Ints(m)
		clusters[i] = &domain.Cluster{
			ID:      i,
			Members: m,
			Size:    len(m),
			Weight:  result.Weights[i],
		}
	}
	s.sortClusters(clusters, req.SortBy)

	return &domain.ClusterResponse{
		Method:     result.Method,
		Clusters:   clusters,
		Statistics: domain.NewClusterStatistics(len(matrix), clusters),
		Success:    true,
	}, nil
}

// sortClusters reorders clusters for presentation. Extraction order is the
// engine's emission order and needs no work.
func (s *ClusterServiceImpl) sortClusters(clusters []*domain.Cluster, by domain.SortCriteria) {
	switch by {
	case domain.SortByWeight:
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusters[i].Weight > clusters[j].Weight
		})
	case domain.SortBySize:
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusters[i].Size > clusters[j].Size
		})
	}
}

func (s *ClusterServiceImpl) translateConfigError(req *domain.ClusterRequest, err error) error {
	switch {
	case errors.Is(err, cluster.ErrUnknownBackend):
		return domain.NewUnsupportedBackendError(req.CliqueBackend, err)
	case errors.Is(err, cluster.ErrUnknownMethod), errors.Is(err, cluster.ErrInvalidCutoff):
		return domain.NewInvalidInputError("invalid strategy configuration", err)
	default:
		return domain.NewConfigError("failed to configure strategy", err)
	}
}
