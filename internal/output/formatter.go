package output

import (
	"io"

	"github.com/masmgr/commit-summary-go/internal/aggregation"
)

// Compile-time interface conformance checks.
var (
	_ SummaryReportWriter = (*TextSummaryWriter)(nil)
	_ SummaryReportWriter = (*MarkdownSummaryWriter)(nil)
	_ SummaryReportWriter = (*JSONSummaryWriter)(nil)
	_ SummaryReportWriter = (*CSVSummaryWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
)

// DefaultWidth is the banner width of the text report.
const DefaultWidth = 80

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format      OutputFormat
	OutputPath  string
	ShowAuthors bool
	ShowDates   bool
	Width       int
}

func (o OutputOptions) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// SummaryReport holds an aggregated commit summary ready for rendering.
type SummaryReport struct {
	RepoPath string
	Title    string
	Summary  *aggregation.Summary
}

// SummaryReportWriter writes commit summary reports.
type SummaryReportWriter interface {
	Write(w io.Writer, report *SummaryReport, options OutputOptions) error
}

// NewSummaryReportWriter creates a report writer for the specified format.
func NewSummaryReportWriter(format OutputFormat) SummaryReportWriter {
	switch format {
	case FormatMarkdown:
		return &MarkdownSummaryWriter{}
	case FormatJSON:
		return &JSONSummaryWriter{}
	case FormatCSV:
		return &CSVSummaryWriter{}
	default:
		return &TextSummaryWriter{}
	}
}
