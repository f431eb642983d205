package domain

import (
	"context"
	"fmt"
	"io"
)

// Method identifies a clustering strategy at the domain level
type Method string

const (
	MethodMaxClique Method = "max_clique"
	MethodDaura     Method = "daura"
	MethodQT        Method = "qt"
)

// ParseMethod converts a string to a Method
func ParseMethod(s string) (Method, error) {
	switch s {
	case "max_clique", "maxclique":
		return MethodMaxClique, nil
	case "daura":
		return MethodDaura, nil
	case "qt":
		return MethodQT, nil
	default:
		return "", NewValidationError(fmt.Sprintf("unknown method: %s (expected max_clique, daura or qt)", s))
	}
}

// Cluster represents one emitted cluster
type Cluster struct {
	ID      int     `json:"id" yaml:"id" csv:"id"`
	Members []int   `json:"members" yaml:"members" csv:"members"`
	Size    int     `json:"size" yaml:"size" csv:"size"`
	Weight  float64 `json:"weight" yaml:"weight" csv:"weight"`
}

// String returns string representation of Cluster
func (c *Cluster) String() string {
	return fmt.Sprintf("Cluster{ID: %d, Size: %d, Weight: %g}", c.ID, c.Size, c.Weight)
}

// ClusterStatistics provides statistics about a clustering run
type ClusterStatistics struct {
	TotalItems     int     `json:"total_items" yaml:"total_items"`
	ClusteredItems int     `json:"clustered_items" yaml:"clustered_items"`
	TotalClusters  int     `json:"total_clusters" yaml:"total_clusters"`
	LargestSize    int     `json:"largest_size" yaml:"largest_size"`
	LargestWeight  float64 `json:"largest_weight" yaml:"largest_weight"`
	TotalWeight    float64 `json:"total_weight" yaml:"total_weight"`
}

// ClusterRequest represents a request for a clustering run
type ClusterRequest struct {
	// Input parameters
	InputPath   string `json:"input_path"`
	WeightsPath string `json:"weights_path"`

	// Strategy configuration
	Method        Method  `json:"method"`
	Cutoff        float64 `json:"cutoff"`
	MinSize       float64 `json:"min_size"`
	MaxClusters   int     `json:"max_clusters"`
	CliqueBackend string  `json:"clique_backend"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	SortBy       SortCriteria `json:"sort_by"`
	ShowMembers  bool         `json:"show_members"`
	NoProgress   bool         `json:"no_progress"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// ClusterResponse represents the response from a clustering run
type ClusterResponse struct {
	Method     string             `json:"method" yaml:"method"`
	Clusters   []*Cluster         `json:"clusters" yaml:"clusters"`
	Statistics *ClusterStatistics `json:"statistics" yaml:"statistics"`

	// Metadata
	Duration int64  `json:"duration_ms" yaml:"duration_ms"`
	Success  bool   `json:"success" yaml:"success"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ClusterService defines the interface for clustering services
type ClusterService interface {
	// Cluster runs the requested strategy over an already-loaded matrix
	Cluster(ctx context.Context, req *ClusterRequest, matrix [][]float64, weights []float64) (*ClusterResponse, error)
}

// MatrixReader defines the interface for loading matrices and weight vectors
type MatrixReader interface {
	// CollectMatrixFiles expands paths (files or directories) into matrix
	// files using include/exclude glob patterns
	CollectMatrixFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadMatrix loads a square numeric matrix from a CSV or
	// whitespace-delimited file
	ReadMatrix(path string) ([][]float64, error)

	// ReadWeights loads a weight vector from a file, one value per line or
	// a single delimited row
	ReadWeights(path string) ([]float64, error)
}

// ClusterOutputFormatter defines the interface for formatting clustering results
type ClusterOutputFormatter interface {
	// Format formats a clustering response according to the specified format
	Format(response *ClusterResponse, req *ClusterRequest) (string, error)

	// Write formats and writes the response to the writer
	Write(response *ClusterResponse, req *ClusterRequest, writer io.Writer) error
}

// ClusterConfigurationLoader defines the interface for loading clustering configuration
type ClusterConfigurationLoader interface {
	// LoadClusterConfig loads clustering configuration from file
	LoadClusterConfig(configPath string) (*ClusterRequest, error)

	// GetDefaultClusterConfig returns default clustering configuration,
	// honoring a discovered config file when present
	GetDefaultClusterConfig() *ClusterRequest
}

// ProgressManager manages progress tracking for clustering rounds
type ProgressManager interface {
	// Initialize sets up progress tracking with the maximum value
	Initialize(maxValue int)

	// Update updates the progress
	Update(processed int)

	// Complete marks the progress as completed
	Complete(success bool)

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close cleans up any resources
	Close()
}

// Validate validates a cluster request
func (req *ClusterRequest) Validate() error {
	if req.InputPath == "" {
		return NewValidationError("input path cannot be empty")
	}

	if _, err := ParseMethod(string(req.Method)); err != nil {
		return err
	}

	if req.Method == MethodQT && req.Cutoff <= 0 {
		return NewValidationError("qt requires a positive cutoff")
	}

	if req.MinSize < 0 {
		return NewValidationError("min_size must be >= 0")
	}

	return nil
}

// HasValidOutputWriter checks if the request has a valid output writer
func (req *ClusterRequest) HasValidOutputWriter() bool {
	return req.OutputWriter != nil
}

// DefaultClusterRequest returns a default cluster request
func DefaultClusterRequest() *ClusterRequest {
	return &ClusterRequest{
		Method:       MethodQT,
		Cutoff:       1.0,
		MinSize:      0,
		MaxClusters:  -1,
		OutputFormat: OutputFormatText,
		SortBy:       SortByExtraction,
		ShowMembers:  false,
	}
}

// NewClusterStatistics computes statistics over emitted clusters
func NewClusterStatistics(totalItems int, clusters []*Cluster) *ClusterStatistics {
	stats := &ClusterStatistics{
		TotalItems:    totalItems,
		TotalClusters: len(clusters),
	}
	for _, c := range clusters {
		stats.ClusteredItems += c.Size
		stats.TotalWeight += c.Weight
		if c.Size > stats.LargestSize {
			stats.LargestSize = c.Size
		}
		if c.Weight > stats.LargestWeight {
			stats.LargestWeight = c.Weight
		}
	}
	return stats
}
