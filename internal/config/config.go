package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mdclust/mdclust/internal/constants"
)

// DefaultConfigFile is the configuration file written by `mdclust init` and
// discovered in the working directory.
const DefaultConfigFile = ".mdclust.toml"

// Config represents the main configuration structure
type Config struct {
	// Cluster holds strategy-independent clustering configuration
	Cluster ClusterConfig `mapstructure:"cluster" toml:"cluster"`

	// QT holds quality-threshold specific configuration
	QT QTConfig `mapstructure:"qt" toml:"qt"`

	// MaxClique holds max-clique specific configuration
	MaxClique MaxCliqueConfig `mapstructure:"maxclique" toml:"maxclique"`

	// Input holds matrix-file collection configuration
	Input InputConfig `mapstructure:"input" toml:"input"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" toml:"output"`
}

// ClusterConfig holds configuration shared by all strategies
type ClusterConfig struct {
	// Method selects the strategy: max_clique, daura or qt
	Method string `mapstructure:"method" toml:"method"`

	// MinSize is the cluster-weight floor; the run stops before emitting a
	// cluster below it
	MinSize float64 `mapstructure:"min_size" toml:"min_size"`

	// MaxClusters caps the number of emitted clusters; negative means
	// unlimited
	MaxClusters int `mapstructure:"max_clusters" toml:"max_clusters"`

	// WeightsFile points to an optional per-item weight vector
	WeightsFile string `mapstructure:"weights_file" toml:"weights_file"`
}

// QTConfig holds configuration for the quality-threshold strategy
type QTConfig struct {
	// Cutoff is the distance threshold; items closer than this may co-cluster
	Cutoff float64 `mapstructure:"cutoff" toml:"cutoff"`
}

// MaxCliqueConfig holds configuration for the max-clique strategy
type MaxCliqueConfig struct {
	// Backend selects the maximal-clique enumerator: bron_kerbosch or
	// degeneracy
	Backend string `mapstructure:"backend" toml:"backend"`
}

// InputConfig holds matrix-file collection configuration
type InputConfig struct {
	// IncludePatterns are the glob patterns matched when a directory is given
	IncludePatterns []string `mapstructure:"include_patterns" toml:"include_patterns"`

	// ExcludePatterns filter out matched files
	ExcludePatterns []string `mapstructure:"exclude_patterns" toml:"exclude_patterns"`

	// Recursive controls directory traversal
	Recursive bool `mapstructure:"recursive" toml:"recursive"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `mapstructure:"format" toml:"format"`

	// SortBy specifies cluster ordering: extraction, weight, size
	SortBy string `mapstructure:"sort_by" toml:"sort_by"`

	// ShowMembers controls whether member indices are listed in text reports
	ShowMembers bool `mapstructure:"show_members" toml:"show_members"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Cluster: ClusterConfig{
			Method:      "qt",
			MinSize:     constants.DefaultMinSize,
			MaxClusters: constants.DefaultMaxClusters,
		},
		QT: QTConfig{
			Cutoff: constants.DefaultCutoff,
		},
		MaxClique: MaxCliqueConfig{
			Backend: constants.DefaultCliqueBackend,
		},
		Input: InputConfig{
			IncludePatterns: append([]string(nil), constants.DefaultIncludePatterns...),
			ExcludePatterns: append([]string(nil), constants.DefaultExcludePatterns...),
			Recursive:       true,
		},
		Output: OutputConfig{
			Format:      constants.DefaultOutputFormat,
			SortBy:      constants.DefaultSortBy,
			ShowMembers: false,
		},
	}
}

// LoadConfig loads configuration from the given file, or from a discovered
// default file when path is empty. An empty path with no discoverable file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = FindConfigFile(".")
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for a default configuration file in dir, then in the
// user's home directory.
func FindConfigFile(dir string) string {
	candidates := []string{
		DefaultConfigFile,
		"mdclust.toml",
	}

	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validMethods := map[string]bool{
		"max_clique": true,
		"daura":      true,
		"qt":         true,
	}
	if !validMethods[c.Cluster.Method] {
		return fmt.Errorf("invalid cluster.method '%s', must be one of: max_clique, daura, qt", c.Cluster.Method)
	}

	if c.Cluster.MinSize < 0 {
		return fmt.Errorf("cluster.min_size must be >= 0, got %g", c.Cluster.MinSize)
	}

	if c.Cluster.Method == "qt" && c.QT.Cutoff <= 0 {
		return fmt.Errorf("qt.cutoff must be > 0, got %g", c.QT.Cutoff)
	}

	validBackends := map[string]bool{
		"bron_kerbosch": true,
		"degeneracy":    true,
	}
	if !validBackends[c.MaxClique.Backend] {
		return fmt.Errorf("invalid maxclique.backend '%s', must be one of: bron_kerbosch, degeneracy", c.MaxClique.Backend)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
		"csv":  true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml, csv", c.Output.Format)
	}

	validSortBy := map[string]bool{
		"extraction": true,
		"weight":     true,
		"size":       true,
	}
	if !validSortBy[c.Output.SortBy] {
		return fmt.Errorf("invalid output.sort_by '%s', must be one of: extraction, weight, size", c.Output.SortBy)
	}

	if len(c.Input.IncludePatterns) == 0 {
		return fmt.Errorf("input.include_patterns cannot be empty")
	}

	return nil
}
