package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/masmgr/commit-summary-go/internal/semantic"
)

// WriteReport renders the report in the configured format to the output
// path, or to stdout when no path is set.
func WriteReport(stdout io.Writer, report *SummaryReport, options OutputOptions) error {
	out, file, err := openOutputWriter(stdout, options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	writer := NewSummaryReportWriter(options.Format)
	if err := writer.Write(out, report, options); err != nil {
		if file != nil {
			file.Close()
		}
		return err
	}

	if file != nil {
		return file.Close()
	}
	return nil
}

func openOutputWriter(stdout io.Writer, outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// bulletSuffix returns the optional author and date annotations of a bullet line.
func bulletSuffix(c semantic.Commit, options OutputOptions) string {
	var b strings.Builder
	if options.ShowAuthors {
		b.WriteString(" - ")
		b.WriteString(c.Author)
	}
	if options.ShowDates {
		b.WriteString(" [")
		b.WriteString(c.Date)
		b.WriteString("]")
	}
	return b.String()
}
