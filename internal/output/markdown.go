package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/commit-summary-go/internal/semantic"
)

// MarkdownSummaryWriter writes the commit summary as Markdown.
type MarkdownSummaryWriter struct{}

// Write outputs the report as Markdown.
func (w *MarkdownSummaryWriter) Write(out io.Writer, report *SummaryReport, options OutputOptions) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	if report.RepoPath != "" {
		fmt.Fprintf(&b, "**Repository:** %s\n\n", report.RepoPath)
	}
	fmt.Fprintf(&b, "**Total Commits:** %d\n", report.Summary.Total())

	for _, group := range report.Summary.Categories() {
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", group.Category.Title(), group.Count())

		for i, scope := range group.Scopes {
			if scope.Name != semantic.GeneralScope && group.HasScopeHeaders() {
				if i > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "### %s\n\n", escapeMarkdown(scope.Name))
			}
			for _, c := range scope.Commits {
				fmt.Fprintf(&b, "- %s (`%s`)%s\n", escapeMarkdown(c.Description), c.ShortHash,
					escapeMarkdown(bulletSuffix(c, options)))
			}
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
