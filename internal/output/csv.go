package output

import (
	"encoding/csv"
	"io"
)

// CSVSummaryWriter writes the commit summary as CSV, one row per commit.
type CSVSummaryWriter struct{}

// Write outputs the report as CSV.
func (w *CSVSummaryWriter) Write(out io.Writer, report *SummaryReport, options OutputOptions) error {
	writer := csv.NewWriter(out)

	headers := []string{"Category", "Scope", "Hash", "Description"}
	if options.ShowAuthors {
		headers = append(headers, "Author")
	}
	if options.ShowDates {
		headers = append(headers, "Date")
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, group := range report.Summary.Categories() {
		for _, scope := range group.Scopes {
			for _, c := range scope.Commits {
				row := []string{string(group.Category), scope.Name, c.ShortHash, c.Description}
				if options.ShowAuthors {
					row = append(row, c.Author)
				}
				if options.ShowDates {
					row = append(row, c.Date)
				}
				if err := writer.Write(row); err != nil {
					return err
				}
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
