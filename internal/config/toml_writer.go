package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid configuration: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// GenerateCommentedConfig renders the default configuration as a commented
// TOML template for `mdclust init`.
func GenerateCommentedConfig() string {
	return `# mdclust configuration file
#
# mdclust groups items (e.g. simulation frames) into clusters from a pairwise
# adjacency or distance matrix. Command-line flags override these settings.

[cluster]
# Strategy: "max_clique", "daura" or "qt"
method = "qt"
# Cluster-weight floor: stop before emitting a cluster lighter than this
min_size = 0.0
# Maximum number of clusters to emit; negative means unlimited
max_clusters = -1
# Optional per-item weight vector file (one value per line)
weights_file = ""

[qt]
# Distance cutoff: items strictly closer than this may co-cluster
cutoff = 1.0

[maxclique]
# Maximal-clique enumerator: "bron_kerbosch" (default) or "degeneracy"
backend = "bron_kerbosch"

[input]
# Glob patterns used when a directory is given instead of a matrix file
include_patterns = ["*.csv", "*.dat", "*.txt"]
exclude_patterns = []
recursive = true

[output]
# Report format: "text", "json", "yaml" or "csv"
format = "text"
# Cluster ordering in reports: "extraction", "weight" or "size"
sort_by = "extraction"
# List member indices in text reports
show_members = false
`
}
