package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClusterRequest)
		wantErr bool
	}{
		{"default with input", func(r *ClusterRequest) {}, false},
		{"missing input", func(r *ClusterRequest) { r.InputPath = "" }, true},
		{"unknown method", func(r *ClusterRequest) { r.Method = "kmeans" }, true},
		{"qt without cutoff", func(r *ClusterRequest) { r.Method = MethodQT; r.Cutoff = 0 }, true},
		{"negative min size", func(r *ClusterRequest) { r.MinSize = -1 }, true},
		{"daura ignores cutoff", func(r *ClusterRequest) { r.Method = MethodDaura; r.Cutoff = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultClusterRequest()
			req.InputPath = "dist.csv"
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("max_clique")
	require.NoError(t, err)
	assert.Equal(t, MethodMaxClique, m)

	m, err = ParseMethod("maxclique")
	require.NoError(t, err)
	assert.Equal(t, MethodMaxClique, m)

	_, err = ParseMethod("spectral")
	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatText, f)

	f, err = ParseOutputFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatYAML, f)

	_, err = ParseOutputFormat("xml")
	assert.Error(t, err)

	var de DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeUnsupportedFormat, de.Code)
}

func TestNewClusterStatistics(t *testing.T) {
	clusters := []*Cluster{
		{ID: 0, Members: []int{0, 1, 2}, Size: 3, Weight: 6},
		{ID: 1, Members: []int{3}, Size: 1, Weight: 2},
	}
	stats := NewClusterStatistics(5, clusters)

	assert.Equal(t, 5, stats.TotalItems)
	assert.Equal(t, 4, stats.ClusteredItems)
	assert.Equal(t, 2, stats.TotalClusters)
	assert.Equal(t, 3, stats.LargestSize)
	assert.Equal(t, 6.0, stats.LargestWeight)
	assert.Equal(t, 8.0, stats.TotalWeight)
}

func TestDomainErrorWrapping(t *testing.T) {
	cause := NewValidationError("bad shape")
	err := NewParseError("dist.csv", cause)

	var de DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeParseError, de.Code)
	assert.Contains(t, err.Error(), "dist.csv")
	assert.ErrorContains(t, err, "bad shape")
}
