package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mdclust/mdclust/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mdclust",
	Short: "Cluster items from a pairwise adjacency or distance matrix",
	Long: `mdclust groups items (such as molecular dynamics frames) into clusters
from a pairwise adjacency or distance matrix.

Three strategies are available:
  • max_clique - repeatedly extract the heaviest maximal clique
  • daura      - leader-based star clustering (Daura et al.)
  • qt         - quality-threshold clustering with a diameter bound

Items can carry weights, so a cluster's weight is the sum of its member
weights rather than its cardinality.`,
	Version: version.Short(),
}

func init() {
	rootCmd.AddCommand(NewMaxCliqueCmd())
	rootCmd.AddCommand(NewDauraCmd())
	rootCmd.AddCommand(NewQTCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
