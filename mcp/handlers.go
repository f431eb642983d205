package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mdclust/mdclust/domain"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleClusterMatrix handles the cluster_matrix tool
func (h *HandlerSet) HandleClusterMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	req := h.requestFromConfig()
	req.InputPath = path

	if method, ok := args["method"].(string); ok {
		parsed, err := domain.ParseMethod(method)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.Method = parsed
	}
	if cutoff, ok := args["cutoff"].(float64); ok {
		req.Cutoff = cutoff
	}
	if minSize, ok := args["min_size"].(float64); ok {
		req.MinSize = minSize
	}
	if maxClusters, ok := args["max_clusters"].(float64); ok {
		req.MaxClusters = int(maxClusters)
	}
	if backend, ok := args["backend"].(string); ok {
		req.CliqueBackend = backend
	}
	if weightsPath, ok := args["weights_path"].(string); ok && weightsPath != "" {
		req.WeightsPath = weightsPath
	}

	matrix, err := h.deps.matrixReader.ReadMatrix(req.InputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read matrix: %v", err)), nil
	}

	var weights []float64
	if req.WeightsPath != "" {
		weights, err = h.deps.matrixReader.ReadWeights(req.WeightsPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read weights: %v", err)), nil
		}
		if len(weights) != len(matrix) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"weight vector has %d entries, matrix has %d rows", len(weights), len(matrix))), nil
		}
	}

	response, err := h.deps.service.Cluster(ctx, req, matrix, weights)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clustering failed: %v", err)), nil
	}

	jsonData, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleMatrixInfo handles the matrix_info tool
func (h *HandlerSet) HandleMatrixInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	matrix, err := h.deps.matrixReader.ReadMatrix(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read matrix: %v", err)), nil
	}

	jsonData, err := json.Marshal(describeMatrix(path, matrix))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *HandlerSet) requestFromConfig() *domain.ClusterRequest {
	req := domain.DefaultClusterRequest()
	cfg := h.deps.Config()
	if cfg == nil {
		return req
	}

	if method, err := domain.ParseMethod(cfg.Cluster.Method); err == nil {
		req.Method = method
	}
	req.MinSize = cfg.Cluster.MinSize
	req.MaxClusters = cfg.Cluster.MaxClusters
	req.WeightsPath = cfg.Cluster.WeightsFile
	req.Cutoff = cfg.QT.Cutoff
	req.CliqueBackend = cfg.MaxClique.Backend
	return req
}

func describeMatrix(path string, matrix [][]float64) map[string]interface{} {
	n := len(matrix)

	symmetric := true
	zeroDiagonal := true
	minOff, maxOff := 0.0, 0.0
	first := true
	for i := 0; i < n; i++ {
		if matrix[i][i] != 0 {
			zeroDiagonal = false
		}
		for j := 0; j < n; j++ {
			if matrix[i][j] != matrix[j][i] {
				symmetric = false
			}
			if i == j {
				continue
			}
			v := matrix[i][j]
			if first || v < minOff {
				minOff = v
			}
			if first || v > maxOff {
				maxOff = v
			}
			first = false
		}
	}

	return map[string]interface{}{
		"path":             path,
		"items":            n,
		"symmetric":        symmetric,
		"zero_diagonal":    zeroDiagonal,
		"min_off_diagonal": minOff,
		"max_off_diagonal": maxOff,
	}
}
