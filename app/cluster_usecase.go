package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mdclust/mdclust/domain"
)

// ClusterUseCase orchestrates the clustering workflow
type ClusterUseCase struct {
	service      domain.ClusterService
	matrixReader domain.MatrixReader
	formatter    domain.ClusterOutputFormatter
	configLoader domain.ClusterConfigurationLoader
	progress     domain.ProgressManager
}

// NewClusterUseCase creates a new cluster use case
func NewClusterUseCase(
	service domain.ClusterService,
	matrixReader domain.MatrixReader,
	formatter domain.ClusterOutputFormatter,
	configLoader domain.ClusterConfigurationLoader,
	progress domain.ProgressManager,
) *ClusterUseCase {
	return &ClusterUseCase{
		service:      service,
		matrixReader: matrixReader,
		formatter:    formatter,
		configLoader: configLoader,
		progress:     progress,
	}
}

// Execute performs the complete clustering workflow: validate, load
// configuration, read the matrix and weights, run the strategy and write the
// report.
func (uc *ClusterUseCase) Execute(ctx context.Context, req *domain.ClusterRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	matrix, err := uc.matrixReader.ReadMatrix(finalReq.InputPath)
	if err != nil {
		return err
	}

	var weights []float64
	if finalReq.WeightsPath != "" {
		weights, err = uc.matrixReader.ReadWeights(finalReq.WeightsPath)
		if err != nil {
			return err
		}
		if len(weights) != len(matrix) {
			return domain.NewInvalidInputError(
				fmt.Sprintf("weight vector has %d entries, matrix has %d rows", len(weights), len(matrix)), nil)
		}
	}

	if uc.progress != nil && !finalReq.NoProgress {
		uc.progress.Initialize(len(matrix))
		defer uc.progress.Close()
	}

	start := time.Now()
	response, err := uc.service.Cluster(ctx, finalReq, matrix, weights)
	if err != nil {
		if uc.progress != nil && !finalReq.NoProgress {
			uc.progress.Complete(false)
		}
		return err
	}
	response.Duration = time.Since(start).Milliseconds()

	if uc.progress != nil && !finalReq.NoProgress {
		uc.progress.Update(response.Statistics.ClusteredItems)
		uc.progress.Complete(true)
	}

	if err := uc.formatter.Write(response, finalReq, finalReq.OutputWriter); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

// validateRequest validates the cluster request
func (uc *ClusterUseCase) validateRequest(req *domain.ClusterRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if err := req.Validate(); err != nil {
		return err
	}

	if !req.HasValidOutputWriter() {
		return fmt.Errorf("output writer is required")
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatCSV:
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	switch req.SortBy {
	case domain.SortByExtraction, domain.SortByWeight, domain.SortBySize:
	default:
		return fmt.Errorf("unsupported sort criteria: %s", req.SortBy)
	}

	return nil
}

// loadAndMergeConfig loads configuration from file and overlays the request on
// top of it. Flags set on the request take precedence over file values, which
// the command layer arranges by only copying explicitly-set flags.
func (uc *ClusterUseCase) loadAndMergeConfig(req *domain.ClusterRequest) (*domain.ClusterRequest, error) {
	if uc.configLoader == nil || req.ConfigPath == "" {
		return req, nil
	}

	configReq, err := uc.configLoader.LoadClusterConfig(req.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", req.ConfigPath, err)
	}

	merged := *req
	if merged.WeightsPath == "" {
		merged.WeightsPath = configReq.WeightsPath
	}
	return &merged, nil
}

// ClusterUseCaseBuilder provides a builder for assembling a ClusterUseCase
type ClusterUseCaseBuilder struct {
	service      domain.ClusterService
	matrixReader domain.MatrixReader
	formatter    domain.ClusterOutputFormatter
	configLoader domain.ClusterConfigurationLoader
	progress     domain.ProgressManager
}

// NewClusterUseCaseBuilder creates a new builder
func NewClusterUseCaseBuilder() *ClusterUseCaseBuilder {
	return &ClusterUseCaseBuilder{}
}

// WithService sets the cluster service
func (b *ClusterUseCaseBuilder) WithService(service domain.ClusterService) *ClusterUseCaseBuilder {
	b.service = service
	return b
}

// WithMatrixReader sets the matrix reader
func (b *ClusterUseCaseBuilder) WithMatrixReader(reader domain.MatrixReader) *ClusterUseCaseBuilder {
	b.matrixReader = reader
	return b
}

// WithFormatter sets the output formatter
func (b *ClusterUseCaseBuilder) WithFormatter(formatter domain.ClusterOutputFormatter) *ClusterUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *ClusterUseCaseBuilder) WithConfigLoader(loader domain.ClusterConfigurationLoader) *ClusterUseCaseBuilder {
	b.configLoader = loader
	return b
}

// WithProgress sets the progress manager
func (b *ClusterUseCaseBuilder) WithProgress(progress domain.ProgressManager) *ClusterUseCaseBuilder {
	b.progress = progress
	return b
}

// Build creates the ClusterUseCase with the configured dependencies
func (b *ClusterUseCaseBuilder) Build() (*ClusterUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("cluster service is required")
	}
	if b.matrixReader == nil {
		return nil, fmt.Errorf("matrix reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	return NewClusterUseCase(
		b.service,
		b.matrixReader,
		b.formatter,
		b.configLoader,
		b.progress,
	), nil
}
