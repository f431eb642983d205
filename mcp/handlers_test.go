package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdclust/mdclust/mcp"
)

const testDistanceMatrix = `0, 0.5, 1.0, 1.2
0.5, 0, 0.5, 0.7
1.0, 0.5, 0, 0.2
1.2, 0.7, 0.2, 0
`

func setupMatrixFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func textFromContent(t *testing.T, c mcplib.Content) string {
	t.Helper()
	tc, ok := mcplib.AsTextContent(c)
	require.True(t, ok)
	return tc.Text
}

func callTool(
	t *testing.T,
	arguments interface{},
	handlerFunc func(*mcp.HandlerSet, context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error),
) *mcplib.CallToolResult {
	t.Helper()

	h := mcp.NewHandlerSet(nil)
	req := mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Arguments: arguments,
		},
	}

	res, err := handlerFunc(h, context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestHandleClusterMatrix(t *testing.T) {
	t.Run("invalid_arguments_format", func(t *testing.T) {
		res := callTool(t, "not-a-map", (*mcp.HandlerSet).HandleClusterMatrix)
		assert.True(t, res.IsError)
	})

	t.Run("path_missing", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{}, (*mcp.HandlerSet).HandleClusterMatrix)
		assert.True(t, res.IsError)
	})

	t.Run("path_not_exist", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path": "/non/existing/path",
		}, (*mcp.HandlerSet).HandleClusterMatrix)
		require.True(t, res.IsError)
		text := textFromContent(t, res.Content[0])
		assert.True(t, strings.HasPrefix(text, "path does not exist"))
	})

	t.Run("unknown_method", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path":   setupMatrixFile(t, testDistanceMatrix),
			"method": "kmeans",
		}, (*mcp.HandlerSet).HandleClusterMatrix)
		assert.True(t, res.IsError)
	})

	t.Run("qt_success", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path":   setupMatrixFile(t, testDistanceMatrix),
			"method": "qt",
			"cutoff": 0.6,
		}, (*mcp.HandlerSet).HandleClusterMatrix)
		require.False(t, res.IsError)

		text := textFromContent(t, res.Content[0])
		var result map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Equal(t, "qt", result["method"])
		clusters, ok := result["clusters"].([]interface{})
		require.True(t, ok)
		assert.Len(t, clusters, 2)
	})

	t.Run("max_clusters_limits_output", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path":         setupMatrixFile(t, testDistanceMatrix),
			"method":       "qt",
			"cutoff":       0.6,
			"max_clusters": 1.0,
		}, (*mcp.HandlerSet).HandleClusterMatrix)
		require.False(t, res.IsError)

		text := textFromContent(t, res.Content[0])
		var result map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		clusters, ok := result["clusters"].([]interface{})
		require.True(t, ok)
		assert.Len(t, clusters, 1)
	})

	t.Run("bad_backend", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path":    setupMatrixFile(t, "0 1\n1 0\n"),
			"method":  "max_clique",
			"backend": "gpu",
		}, (*mcp.HandlerSet).HandleClusterMatrix)
		assert.True(t, res.IsError)
	})
}

func TestHandleMatrixInfo(t *testing.T) {
	t.Run("path_missing", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{}, (*mcp.HandlerSet).HandleMatrixInfo)
		assert.True(t, res.IsError)
	})

	t.Run("success", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path": setupMatrixFile(t, testDistanceMatrix),
		}, (*mcp.HandlerSet).HandleMatrixInfo)
		require.False(t, res.IsError)

		text := textFromContent(t, res.Content[0])
		var result map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Equal(t, float64(4), result["items"])
		assert.Equal(t, true, result["symmetric"])
		assert.Equal(t, true, result["zero_diagonal"])
		assert.Equal(t, 0.2, result["min_off_diagonal"])
		assert.Equal(t, 1.2, result["max_off_diagonal"])
	})

	t.Run("non_square", func(t *testing.T) {
		res := callTool(t, map[string]interface{}{
			"path": setupMatrixFile(t, "0 1 0\n1 0 1\n"),
		}, (*mcp.HandlerSet).HandleMatrixInfo)
		assert.True(t, res.IsError)
	})
}
