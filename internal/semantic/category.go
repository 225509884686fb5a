package semantic

import "strings"

// Category is the semantic class of a commit.
type Category string

const (
	CategoryFeat     Category = "feat"
	CategoryFix      Category = "fix"
	CategoryDocs     Category = "docs"
	CategoryStyle    Category = "style"
	CategoryRefactor Category = "refactor"
	CategoryPerf     Category = "perf"
	CategoryTest     Category = "test"
	CategoryBuild    Category = "build"
	CategoryCI       Category = "ci"
	CategoryChore    Category = "chore"
	CategoryRevert   Category = "revert"
	CategoryOther    Category = "other"
)

// Categories lists every category in canonical report order.
var Categories = []Category{
	CategoryFeat,
	CategoryFix,
	CategoryDocs,
	CategoryStyle,
	CategoryRefactor,
	CategoryPerf,
	CategoryTest,
	CategoryBuild,
	CategoryCI,
	CategoryChore,
	CategoryRevert,
	CategoryOther,
}

var categoryTitles = map[Category]string{
	CategoryFeat:     "Features",
	CategoryFix:      "Bug Fixes",
	CategoryDocs:     "Documentation",
	CategoryStyle:    "Code Style",
	CategoryRefactor: "Code Refactoring",
	CategoryPerf:     "Performance Improvements",
	CategoryTest:     "Tests",
	CategoryBuild:    "Build System",
	CategoryCI:       "Continuous Integration",
	CategoryChore:    "Chores",
	CategoryRevert:   "Reverts",
	CategoryOther:    "Other Changes",
}

// Title returns the human-readable heading for the category.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return categoryTitles[CategoryOther]
}

// Index returns the position of the category in canonical order, or -1.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// ParseCategory maps a commit type word to a category.
// Unknown words map to CategoryOther.
func ParseCategory(word string) Category {
	c := Category(strings.ToLower(word))
	if _, ok := categoryTitles[c]; ok {
		return c
	}
	return CategoryOther
}
