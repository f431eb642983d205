package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all mdclust MCP tools with the server
func RegisterTools(s *server.MCPServer, handlers *HandlerSet) {
	if handlers == nil {
		handlers = NewHandlerSet(nil)
	}

	// Tool 1: cluster_matrix - run a clustering strategy over a matrix file
	s.AddTool(mcp.NewTool("cluster_matrix",
		mcp.WithDescription("Cluster items from a pairwise adjacency or distance matrix file using max_clique, daura or qt"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the matrix file (CSV or whitespace-delimited)")),
		mcp.WithString("method",
			mcp.Description("Clustering strategy: max_clique, daura or qt (default: from config)")),
		mcp.WithNumber("cutoff",
			mcp.Description("QT distance cutoff; items strictly closer than this may co-cluster")),
		mcp.WithNumber("min_size",
			mcp.Description("Cluster-weight floor; stop before emitting a lighter cluster (default: 0)")),
		mcp.WithNumber("max_clusters",
			mcp.Description("Maximum number of clusters to emit; negative = unlimited (default: -1)")),
		mcp.WithString("backend",
			mcp.Description("Maximal-clique enumerator for max_clique: bron_kerbosch or degeneracy")),
		mcp.WithString("weights_path",
			mcp.Description("Optional per-item weight vector file")),
	), handlers.HandleClusterMatrix)

	// Tool 2: matrix_info - inspect a matrix file without clustering
	s.AddTool(mcp.NewTool("matrix_info",
		mcp.WithDescription("Inspect a matrix file: dimension, symmetry, diagonal convention and off-diagonal value range"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the matrix file to inspect")),
	), handlers.HandleMatrixInfo)
}
