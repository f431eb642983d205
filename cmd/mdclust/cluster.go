package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdclust/mdclust/app"
	"github.com/mdclust/mdclust/domain"
	"github.com/mdclust/mdclust/internal/constants"
	"github.com/mdclust/mdclust/service"
)

// ClusterCommand handles one clustering subcommand. The same command object
// backs all three strategies; only the method and the strategy-specific flags
// differ.
type ClusterCommand struct {
	method domain.Method

	// Input parameters
	weightsFile string
	configFile  string

	// Strategy configuration
	cutoff      float64
	minSize     float64
	maxClusters int
	backend     string

	// Output format flags (only one should be true)
	json bool
	yaml bool
	csv  bool

	// Output options
	outputPath  string
	sortBy      string
	showMembers bool
	noProgress  bool
}

// NewClusterCommand creates a clustering command for the given method
func NewClusterCommand(method domain.Method) *ClusterCommand {
	return &ClusterCommand{
		method:      method,
		cutoff:      constants.DefaultCutoff,
		minSize:     constants.DefaultMinSize,
		maxClusters: constants.DefaultMaxClusters,
		backend:     constants.DefaultCliqueBackend,
		sortBy:      constants.DefaultSortBy,
	}
}

// CreateCobraCommand creates the Cobra command for this strategy
func (c *ClusterCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <matrix-file>", c.commandName()),
		Short: c.shortHelp(),
		Long:  c.longHelp(),
		Args:  cobra.ExactArgs(1),
		RunE:  c.runClustering,
	}

	cmd.Flags().StringVarP(&c.weightsFile, "weights", "w", c.weightsFile,
		"Per-item weight vector file (one value per line)")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", c.configFile,
		"Configuration file path")

	cmd.Flags().Float64Var(&c.minSize, "min-size", c.minSize,
		"Stop before emitting a cluster lighter than this weight")
	cmd.Flags().IntVar(&c.maxClusters, "max-clusters", c.maxClusters,
		"Maximum number of clusters to emit (negative = unlimited)")

	switch c.method {
	case domain.MethodQT:
		cmd.Flags().Float64Var(&c.cutoff, "cutoff", c.cutoff,
			"Distance cutoff: items strictly closer than this may co-cluster")
	case domain.MethodMaxClique:
		cmd.Flags().StringVar(&c.backend, "backend", c.backend,
			"Maximal-clique enumerator (bron_kerbosch|degeneracy)")
	}

	cmd.Flags().BoolVar(&c.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output as CSV")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "",
		"Write the report to a file instead of stdout")

	cmd.Flags().StringVar(&c.sortBy, "sort", c.sortBy,
		"Cluster ordering (extraction|weight|size)")
	cmd.Flags().BoolVar(&c.showMembers, "members", c.showMembers,
		"List member indices in text reports")
	cmd.Flags().BoolVar(&c.noProgress, "no-progress", c.noProgress,
		"Disable the progress bar")

	return cmd
}

func (c *ClusterCommand) commandName() string {
	if c.method == domain.MethodMaxClique {
		return "maxclique"
	}
	return string(c.method)
}

func (c *ClusterCommand) shortHelp() string {
	switch c.method {
	case domain.MethodMaxClique:
		return "Cluster by repeatedly extracting the heaviest maximal clique"
	case domain.MethodDaura:
		return "Cluster around highest-degree leaders (Daura et al.)"
	default:
		return "Quality-threshold clustering with a diameter bound"
	}
}

func (c *ClusterCommand) longHelp() string {
	switch c.method {
	case domain.MethodMaxClique:
		return `Cluster items from an adjacency matrix by repeatedly extracting the
maximal clique with the largest total weight. Matrix entries greater
than zero mark adjacent pairs.

Examples:
  mdclust maxclique adjacency.csv
  mdclust maxclique --backend degeneracy --min-size 3 adjacency.csv
  mdclust maxclique --weights frames.txt --json adjacency.csv`
	case domain.MethodDaura:
		return `Cluster items from an adjacency matrix with the leader-based algorithm
of Daura et al.: each round the item with the highest weighted degree
collapses its whole neighborhood into a cluster.

Examples:
  mdclust daura adjacency.csv
  mdclust daura --weights frames.txt --max-clusters 10 adjacency.csv`
	default:
		return `Cluster items from a distance matrix with quality-threshold clustering:
each round greedily grows a candidate cluster around every eligible seed,
keeping the cluster diameter strictly below the cutoff, and emits the
heaviest candidate.

Examples:
  mdclust qt --cutoff 0.25 distances.csv
  mdclust qt --cutoff 0.25 --weights frames.txt --members distances.csv`
	}
}

// runClustering executes the clustering command
func (c *ClusterCommand) runClustering(cmd *cobra.Command, args []string) error {
	req, err := c.createClusterRequest(cmd, args[0])
	if err != nil {
		return err
	}

	if c.outputPath != "" {
		file, err := os.Create(c.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		req.OutputWriter = file
	}

	var progress domain.ProgressManager
	if c.noProgress {
		progress = service.NewNoOpProgressManager()
	} else {
		progress = service.NewProgressManager()
	}

	useCase, err := app.NewClusterUseCaseBuilder().
		WithService(service.NewClusterService()).
		WithMatrixReader(service.NewMatrixReader()).
		WithFormatter(service.NewClusterFormatter()).
		WithConfigLoader(service.NewClusterConfigurationLoader()).
		WithProgress(progress).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create cluster use case: %w", err)
	}

	if err := useCase.Execute(cmd.Context(), req); err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}
	return nil
}

// createClusterRequest builds the request from config-file defaults overlaid
// with explicitly-set flags.
func (c *ClusterCommand) createClusterRequest(cmd *cobra.Command, inputPath string) (*domain.ClusterRequest, error) {
	loader := service.NewClusterConfigurationLoader()

	var req *domain.ClusterRequest
	if c.configFile != "" {
		loaded, err := loader.LoadClusterConfig(c.configFile)
		if err != nil {
			return nil, err
		}
		req = loaded
	} else {
		req = loader.GetDefaultClusterConfig()
	}

	req.InputPath = inputPath
	req.Method = c.method
	req.OutputWriter = cmd.OutOrStdout()
	req.NoProgress = c.noProgress

	explicit := GetExplicitFlags(cmd)
	if explicit["weights"] {
		req.WeightsPath = c.weightsFile
	}
	if explicit["min-size"] {
		req.MinSize = c.minSize
	}
	if explicit["max-clusters"] {
		req.MaxClusters = c.maxClusters
	}
	if explicit["cutoff"] {
		req.Cutoff = c.cutoff
	}
	if explicit["backend"] {
		req.CliqueBackend = c.backend
	}
	if explicit["members"] {
		req.ShowMembers = c.showMembers
	}

	if explicit["sort"] {
		sortBy, err := domain.ParseSortCriteria(c.sortBy)
		if err != nil {
			return nil, err
		}
		req.SortBy = sortBy
	}

	switch {
	case c.json:
		req.OutputFormat = domain.OutputFormatJSON
	case c.yaml:
		req.OutputFormat = domain.OutputFormatYAML
	case c.csv:
		req.OutputFormat = domain.OutputFormatCSV
	}

	return req, nil
}

// NewMaxCliqueCmd creates the maxclique cobra command
func NewMaxCliqueCmd() *cobra.Command {
	return NewClusterCommand(domain.MethodMaxClique).CreateCobraCommand()
}

// NewDauraCmd creates the daura cobra command
func NewDauraCmd() *cobra.Command {
	return NewClusterCommand(domain.MethodDaura).CreateCobraCommand()
}

// NewQTCmd creates the qt cobra command
func NewQTCmd() *cobra.Command {
	return NewClusterCommand(domain.MethodQT).CreateCobraCommand()
}
