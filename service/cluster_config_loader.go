package service

import (
	"github.com/mdclust/mdclust/domain"
	"github.com/mdclust/mdclust/internal/config"
)

// ClusterConfigurationLoaderImpl implements the domain.ClusterConfigurationLoader
// interface over the TOML configuration layer.
type ClusterConfigurationLoaderImpl struct{}

// NewClusterConfigurationLoader creates a new configuration loader
func NewClusterConfigurationLoader() *ClusterConfigurationLoaderImpl {
	return &ClusterConfigurationLoaderImpl{}
}

// LoadClusterConfig loads clustering configuration from the given file
func (l *ClusterConfigurationLoaderImpl) LoadClusterConfig(configPath string) (*domain.ClusterRequest, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}
	return l.requestFromConfig(cfg), nil
}

// GetDefaultClusterConfig returns default clustering configuration, honoring a
// discovered config file when present.
func (l *ClusterConfigurationLoaderImpl) GetDefaultClusterConfig() *domain.ClusterRequest {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return domain.DefaultClusterRequest()
	}
	return l.requestFromConfig(cfg)
}

func (l *ClusterConfigurationLoaderImpl) requestFromConfig(cfg *config.Config) *domain.ClusterRequest {
	req := domain.DefaultClusterRequest()

	if method, err := domain.ParseMethod(cfg.Cluster.Method); err == nil {
		req.Method = method
	}
	req.MinSize = cfg.Cluster.MinSize
	req.MaxClusters = cfg.Cluster.MaxClusters
	req.WeightsPath = cfg.Cluster.WeightsFile
	req.Cutoff = cfg.QT.Cutoff
	req.CliqueBackend = cfg.MaxClique.Backend

	if format, err := domain.ParseOutputFormat(cfg.Output.Format); err == nil {
		req.OutputFormat = format
	}
	if sortBy, err := domain.ParseSortCriteria(cfg.Output.SortBy); err == nil {
		req.SortBy = sortBy
	}
	req.ShowMembers = cfg.Output.ShowMembers

	return req
}
