package aggregation

import (
	"sort"

	"github.com/masmgr/commit-summary-go/internal/git"
	"github.com/masmgr/commit-summary-go/internal/semantic"
)

// ScopeGroup holds the commits of one scope within a category, in log order.
type ScopeGroup struct {
	Name    string // scope name, semantic.GeneralScope when unscoped
	Commits []semantic.Commit
}

// CategoryGroup holds the scope groups of one category, sorted by scope name.
type CategoryGroup struct {
	Category semantic.Category
	Scopes   []ScopeGroup
}

// Count returns the number of commits in the category.
func (g CategoryGroup) Count() int {
	n := 0
	for _, s := range g.Scopes {
		n += len(s.Commits)
	}
	return n
}

// HasScopeHeaders reports whether scope headers should be shown for the category.
func (g CategoryGroup) HasScopeHeaders() bool {
	return len(g.Scopes) > 1
}

// Summary is the two-level grouping of classified commits.
type Summary struct {
	groups []CategoryGroup
	total  int
}

// Categories returns the non-empty category groups in canonical order.
func (s *Summary) Categories() []CategoryGroup {
	return s.groups
}

// Category returns the group for a category, if it has commits.
func (s *Summary) Category(c semantic.Category) (CategoryGroup, bool) {
	for _, g := range s.groups {
		if g.Category == c {
			return g, true
		}
	}
	return CategoryGroup{}, false
}

// Total returns the number of aggregated commits.
func (s *Summary) Total() int {
	return s.total
}

// Aggregate groups commits by category, then by scope.
// Commits keep their input order within a scope group.
func Aggregate(commits []semantic.Commit) *Summary {
	byCategory := make(map[semantic.Category]map[string][]semantic.Commit)
	for _, c := range commits {
		category := c.Category
		if category.Index() < 0 {
			category = semantic.CategoryOther
			c.Category = category
		}
		scopes, ok := byCategory[category]
		if !ok {
			scopes = make(map[string][]semantic.Commit)
			byCategory[category] = scopes
		}
		name := c.ScopeName()
		scopes[name] = append(scopes[name], c)
	}

	summary := &Summary{total: len(commits)}
	for _, category := range semantic.Categories {
		scopes, ok := byCategory[category]
		if !ok {
			continue
		}

		names := make([]string, 0, len(scopes))
		for name := range scopes {
			names = append(names, name)
		}
		sort.Strings(names)

		group := CategoryGroup{Category: category, Scopes: make([]ScopeGroup, 0, len(names))}
		for _, name := range names {
			group.Scopes = append(group.Scopes, ScopeGroup{Name: name, Commits: scopes[name]})
		}
		summary.groups = append(summary.groups, group)
	}

	return summary
}

// ClassifyAll classifies raw log entries in order.
func ClassifyAll(raw []git.RawCommit, classifier *semantic.Classifier) []semantic.Commit {
	commits := make([]semantic.Commit, 0, len(raw))
	for _, r := range raw {
		commits = append(commits, classifier.NewCommit(r.Hash, r.Message, r.Author, r.Date))
	}
	return commits
}
