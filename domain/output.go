package domain

// OutputFormat represents the output format for clustering results
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// ParseOutputFormat converts a string to an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return OutputFormatText, nil
	case "json":
		return OutputFormatJSON, nil
	case "yaml", "yml":
		return OutputFormatYAML, nil
	case "csv":
		return OutputFormatCSV, nil
	default:
		return "", NewUnsupportedFormatError(s)
	}
}

// SortCriteria defines how emitted clusters are ordered in reports.
// Strategies emit clusters in extraction order; sorting is a presentation
// concern only.
type SortCriteria string

const (
	// SortByExtraction keeps the strategy's emission order.
	SortByExtraction SortCriteria = "extraction"
	// SortByWeight orders clusters by decreasing total weight.
	SortByWeight SortCriteria = "weight"
	// SortBySize orders clusters by decreasing member count.
	SortBySize SortCriteria = "size"
)

// ParseSortCriteria converts a string to a SortCriteria
func ParseSortCriteria(s string) (SortCriteria, error) {
	switch s {
	case "extraction", "":
		return SortByExtraction, nil
	case "weight":
		return SortByWeight, nil
	case "size":
		return SortBySize, nil
	default:
		return "", NewValidationError("sort must be one of: extraction, weight, size")
	}
}
