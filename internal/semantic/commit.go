package semantic

// GeneralScope is the display name for commits without an explicit scope.
const GeneralScope = "general"

// ShortHashLength is the number of hash characters shown in reports.
const ShortHashLength = 7

// Commit is a commit enriched with its classification.
type Commit struct {
	ShortHash   string
	Category    Category
	Scope       string // empty means general
	Description string
	Author      string
	Date        string // YYYY-MM-DD
}

// ScopeName returns the scope, or GeneralScope when none was given.
func (c Commit) ScopeName() string {
	if c.Scope == "" {
		return GeneralScope
	}
	return c.Scope
}

// ShortHash truncates a full commit hash for display.
func ShortHash(hash string) string {
	if len(hash) <= ShortHashLength {
		return hash
	}
	return hash[:ShortHashLength]
}

// NewCommit classifies message and builds a Commit.
func (c *Classifier) NewCommit(hash, message, author, date string) Commit {
	category, scope, description := c.Classify(message)
	return Commit{
		ShortHash:   ShortHash(hash),
		Category:    category,
		Scope:       scope,
		Description: description,
		Author:      author,
		Date:        date,
	}
}
