package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdclust/mdclust/domain"
)

// ClusterFormatterImpl implements the domain.ClusterOutputFormatter interface
type ClusterFormatterImpl struct{}

// NewClusterFormatter creates a new cluster output formatter
func NewClusterFormatter() *ClusterFormatterImpl {
	return &ClusterFormatterImpl{}
}

// Format formats the clustering response according to the requested format
func (f *ClusterFormatterImpl) Format(response *domain.ClusterResponse, req *domain.ClusterRequest) (string, error) {
	switch req.OutputFormat {
	case domain.OutputFormatText:
		return f.formatText(response, req.ShowMembers), nil
	case domain.OutputFormatJSON:
		return f.formatJSON(response)
	case domain.OutputFormatYAML:
		return f.formatYAML(response)
	case domain.OutputFormatCSV:
		return f.formatCSV(response)
	default:
		return "", domain.NewUnsupportedFormatError(string(req.OutputFormat))
	}
}

// Write writes the formatted output to the writer
func (f *ClusterFormatterImpl) Write(response *domain.ClusterResponse, req *domain.ClusterRequest, writer io.Writer) error {
	output, err := f.Format(response, req)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(writer, output); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *ClusterFormatterImpl) formatText(response *domain.ClusterResponse, showMembers bool) string {
	var b strings.Builder

	b.WriteString(formatMainHeader("Clustering Report"))
	fmt.Fprintf(&b, "Method: %s\n", response.Method)

	stats := response.Statistics
	if stats != nil {
		b.WriteString(formatSectionHeader("SUMMARY"))
		fmt.Fprintf(&b, "  Items:           %d\n", stats.TotalItems)
		fmt.Fprintf(&b, "  Clustered items: %d\n", stats.ClusteredItems)
		fmt.Fprintf(&b, "  Clusters:        %d\n", stats.TotalClusters)
		if stats.TotalClusters > 0 {
			fmt.Fprintf(&b, "  Largest size:    %d\n", stats.LargestSize)
			fmt.Fprintf(&b, "  Largest weight:  %s\n", formatWeight(stats.LargestWeight))
		}
	}

	if len(response.Clusters) > 0 {
		b.WriteString(formatSectionHeader("CLUSTERS"))
		fmt.Fprintf(&b, "  %-8s %-8s %s\n", "ID", "Size", "Weight")
		for _, c := range response.Clusters {
			fmt.Fprintf(&b, "  %-8d %-8d %s\n", c.ID, c.Size, formatWeight(c.Weight))
			if showMembers {
				fmt.Fprintf(&b, "           members: %s\n", formatMembers(c.Members))
			}
		}
	}

	if response.Duration > 0 {
		fmt.Fprintf(&b, "\nCompleted in %dms\n", response.Duration)
	}

	return b.String()
}

func (f *ClusterFormatterImpl) formatJSON(response *domain.ClusterResponse) (string, error) {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data) + "\n", nil
}

func (f *ClusterFormatterImpl) formatYAML(response *domain.ClusterResponse) (string, error) {
	data, err := yaml.Marshal(response)
	if err != nil {
		return "", domain.NewOutputError("failed to marshal YAML", err)
	}
	return string(data), nil
}

// formatCSV emits one row per cluster with members joined by spaces.
func (f *ClusterFormatterImpl) formatCSV(response *domain.ClusterResponse) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"cluster_id", "size", "weight", "members"}); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}
	for _, c := range response.Clusters {
		record := []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.Size),
			strconv.FormatFloat(c.Weight, 'g', -1, 64),
			formatMembers(c.Members),
		}
		if err := w.Write(record); err != nil {
			return "", domain.NewOutputError("failed to write CSV record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV", err)
	}
	return b.String(), nil
}

func formatMainHeader(title string) string {
	line := strings.Repeat("=", len(title)+8)
	return fmt.Sprintf("%s\n    %s\n%s\n", line, title, line)
}

func formatSectionHeader(title string) string {
	return fmt.Sprintf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

func formatMembers(members []int) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, " ")
}
