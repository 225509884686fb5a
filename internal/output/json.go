package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONSummaryWriter writes the commit summary as JSON.
type JSONSummaryWriter struct{}

// JSONSummaryReport is the JSON output structure for a commit summary.
type JSONSummaryReport struct {
	RepoPath     string         `json:"repo"`
	Title        string         `json:"title"`
	TotalCommits int            `json:"totalCommits"`
	Categories   []JSONCategory `json:"categories"`
}

// JSONCategory is one category block.
type JSONCategory struct {
	Type   string      `json:"type"`
	Title  string      `json:"title"`
	Count  int         `json:"count"`
	Scopes []JSONScope `json:"scopes"`
}

// JSONScope is one scope group within a category.
type JSONScope struct {
	Name    string       `json:"name"`
	Commits []JSONCommit `json:"commits"`
}

// JSONCommit is a single classified commit.
type JSONCommit struct {
	Hash        string `json:"hash"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Write outputs the report as indented JSON.
func (w *JSONSummaryWriter) Write(out io.Writer, report *SummaryReport, options OutputOptions) error {
	jsonReport := JSONSummaryReport{
		RepoPath:     report.RepoPath,
		Title:        report.Title,
		TotalCommits: report.Summary.Total(),
		Categories:   make([]JSONCategory, 0, len(report.Summary.Categories())),
	}

	for _, group := range report.Summary.Categories() {
		cat := JSONCategory{
			Type:   string(group.Category),
			Title:  group.Category.Title(),
			Count:  group.Count(),
			Scopes: make([]JSONScope, 0, len(group.Scopes)),
		}
		for _, scope := range group.Scopes {
			js := JSONScope{Name: scope.Name, Commits: make([]JSONCommit, 0, len(scope.Commits))}
			for _, c := range scope.Commits {
				jc := JSONCommit{Hash: c.ShortHash, Description: c.Description}
				if options.ShowAuthors {
					jc.Author = c.Author
				}
				if options.ShowDates {
					jc.Date = c.Date
				}
				js.Commits = append(js.Commits, jc)
			}
			cat.Scopes = append(cat.Scopes, js)
		}
		jsonReport.Categories = append(jsonReport.Categories, cat)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonReport); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
