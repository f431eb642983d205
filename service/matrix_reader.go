package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mdclust/mdclust/domain"
)

// MatrixReaderImpl implements the domain.MatrixReader interface
type MatrixReaderImpl struct{}

// NewMatrixReader creates a new matrix reader service
func NewMatrixReader() *MatrixReaderImpl {
	return &MatrixReaderImpl{}
}

// CollectMatrixFiles collects matrix files from the given paths
func (r *MatrixReaderImpl) CollectMatrixFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if !info.IsDir() {
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			continue
		}

		collected, err := r.collectFromDirectory(path, recursive, includePatterns, excludePatterns)
		if err != nil {
			return nil, err
		}
		for _, f := range collected {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	return files, nil
}

func (r *MatrixReaderImpl) collectFromDirectory(dirPath string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if !recursive && path != dirPath {
				return filepath.SkipDir
			}
			return nil
		}
		if r.shouldIncludeFile(filepath.Base(path), includePatterns, excludePatterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewFileNotFoundError(dirPath, err)
	}

	return files, nil
}

func (r *MatrixReaderImpl) shouldIncludeFile(name string, includePatterns, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return false
		}
	}

	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// ReadMatrix loads a square numeric matrix from a CSV or whitespace-delimited
// text file. Blank lines and lines starting with '#' are skipped.
func (r *MatrixReaderImpl) ReadMatrix(path string) ([][]float64, error) {
	rows, err := r.readNumericRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewParseError(path, fmt.Errorf("no numeric rows found"))
	}

	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, domain.NewParseError(path,
				fmt.Errorf("matrix must be square: row %d has %d values, expected %d", i, len(row), n))
		}
	}

	return rows, nil
}

// ReadWeights loads a weight vector: either one value per line or a single
// delimited row.
func (r *MatrixReaderImpl) ReadWeights(path string) ([]float64, error) {
	rows, err := r.readNumericRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewParseError(path, fmt.Errorf("no numeric values found"))
	}

	if len(rows) == 1 {
		return rows[0], nil
	}

	weights := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, domain.NewParseError(path,
				fmt.Errorf("weights must be a single row or one value per line: line %d has %d values", i, len(row)))
		}
		weights[i] = row[0]
	}
	return weights, nil
}

// readNumericRows parses a file into rows of floats, accepting commas or
// whitespace as separators.
func (r *MatrixReaderImpl) readNumericRows(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewParseError(path, err)
	}

	var rows [][]float64
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitNumericLine(line)
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, domain.NewParseError(path,
					fmt.Errorf("line %d: invalid number %q", lineNo+1, field))
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitNumericLine(line string) []string {
	if strings.Contains(line, ",") {
		parts := strings.Split(line, ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				fields = append(fields, p)
			}
		}
		return fields
	}
	return strings.Fields(line)
}
