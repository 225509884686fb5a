package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/commit-summary-go/internal/semantic"
)

// TextSummaryWriter writes the plain text commit summary.
type TextSummaryWriter struct{}

// Write outputs the report as plain text.
func (w *TextSummaryWriter) Write(out io.Writer, report *SummaryReport, options OutputOptions) error {
	_, err := fmt.Fprintln(out, RenderText(report, options))
	return err
}

// RenderText renders the report as a deterministic text block without a
// trailing newline.
func RenderText(report *SummaryReport, options OutputOptions) string {
	width := options.width()
	heavy := strings.Repeat("=", width)
	light := strings.Repeat("-", width)

	lines := []string{
		heavy,
		report.Title,
		heavy,
		"",
		fmt.Sprintf("Total Commits: %d", report.Summary.Total()),
		"",
	}

	for _, group := range report.Summary.Categories() {
		lines = append(lines,
			light,
			fmt.Sprintf("%s (%d commits)", strings.ToUpper(group.Category.Title()), group.Count()),
			light,
		)

		for _, scope := range group.Scopes {
			if scope.Name != semantic.GeneralScope && group.HasScopeHeaders() {
				lines = append(lines, "", "  ["+scope.Name+"]")
			}
			for _, c := range scope.Commits {
				lines = append(lines, fmt.Sprintf("  • %s (%s)%s", c.Description, c.ShortHash, bulletSuffix(c, options)))
			}
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
