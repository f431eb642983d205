// Package constants defines the default thresholds shared by the CLI, the
// configuration loader and the MCP surface.
package constants

const (
	// DefaultCutoff is the default QT distance cutoff. Distance matrices are
	// domain specific, so this is only a sensible starting point for
	// normalized distances.
	DefaultCutoff = 1.0

	// DefaultMinSize is the default cluster-weight floor. Zero keeps every
	// extracted cluster, down to singletons.
	DefaultMinSize = 0.0

	// DefaultMaxClusters is the default cap on emitted clusters. Negative
	// means unlimited.
	DefaultMaxClusters = -1

	// DefaultCliqueBackend selects the maximal-clique enumerator used by the
	// max_clique method when none is requested.
	DefaultCliqueBackend = "bron_kerbosch"

	// DefaultOutputFormat is the report format used when none is requested.
	DefaultOutputFormat = "text"

	// DefaultSortBy keeps clusters in strategy emission order.
	DefaultSortBy = "extraction"
)

// Default file-collection patterns for matrix inputs.
var (
	DefaultIncludePatterns = []string{"*.csv", "*.dat", "*.txt"}
	DefaultExcludePatterns = []string{}
)
