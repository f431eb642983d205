package mcp

import (
	"github.com/mdclust/mdclust/domain"
	"github.com/mdclust/mdclust/internal/config"
	"github.com/mdclust/mdclust/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	matrixReader domain.MatrixReader
	service      domain.ClusterService
	config       *config.Config
	configPath   string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Dependencies{
		matrixReader: service.NewMatrixReader(),
		service:      service.NewClusterService(),
		config:       cfg,
		configPath:   configPath,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}
