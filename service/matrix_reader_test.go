package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdclust/mdclust/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMatrixCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.csv", "0, 1, 0\n1, 0, 1\n0, 1, 0\n")

	reader := NewMatrixReader()
	matrix, err := reader.ReadMatrix(path)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, matrix)
}

func TestReadMatrixWhitespaceWithComments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.dat", "# pairwise distances\n0 0.5\n\n0.5 0\n")

	reader := NewMatrixReader()
	matrix, err := reader.ReadMatrix(path)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 0.5}, {0.5, 0}}, matrix)
}

func TestReadMatrixRejectsNonSquare(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.dat", "0 1 0\n1 0 1\n")

	reader := NewMatrixReader()
	_, err := reader.ReadMatrix(path)
	require.Error(t, err)

	var domainErr domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeParseError, domainErr.Code)
}

func TestReadMatrixRejectsBadNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.dat", "0 one\ntwo 0\n")

	reader := NewMatrixReader()
	_, err := reader.ReadMatrix(path)
	assert.ErrorContains(t, err, "invalid number")
}

func TestReadMatrixMissingFile(t *testing.T) {
	reader := NewMatrixReader()
	_, err := reader.ReadMatrix(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var domainErr domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeFileNotFound, domainErr.Code)
}

func TestReadWeightsColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "w.txt", "1\n2.5\n3\n")

	reader := NewMatrixReader()
	weights, err := reader.ReadWeights(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, weights)
}

func TestReadWeightsSingleRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "w.csv", "1, 2.5, 3\n")

	reader := NewMatrixReader()
	weights, err := reader.ReadWeights(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, weights)
}

func TestReadWeightsRejectsRagged(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "w.txt", "1 2\n3 4\n")

	reader := NewMatrixReader()
	_, err := reader.ReadWeights(path)
	assert.Error(t, err)
}

func TestCollectMatrixFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "0\n")
	writeFile(t, dir, "b.dat", "0\n")
	writeFile(t, dir, "notes.md", "hello\n")

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "c.csv", "0\n")

	reader := NewMatrixReader()
	include := []string{"*.csv", "*.dat"}

	t.Run("recursive", func(t *testing.T) {
		files, err := reader.CollectMatrixFiles([]string{dir}, true, include, nil)
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("non-recursive", func(t *testing.T) {
		files, err := reader.CollectMatrixFiles([]string{dir}, false, include, nil)
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("exclude pattern", func(t *testing.T) {
		files, err := reader.CollectMatrixFiles([]string{dir}, true, include, []string{"b.*"})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("explicit file bypasses patterns", func(t *testing.T) {
		files, err := reader.CollectMatrixFiles([]string{a, a}, false, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{a}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := reader.CollectMatrixFiles([]string{filepath.Join(dir, "gone")}, false, include, nil)
		assert.Error(t, err)
	})
}
