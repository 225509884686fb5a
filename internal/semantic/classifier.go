package semantic

import (
	"regexp"
)

// wordChar is a Unicode-aware \w. RE2's \w and \b only know ASCII letters.
const wordChar = `[\p{L}\p{N}_]`

// strictPattern matches "type(scope): description" and "type: description".
var strictPattern = regexp.MustCompile(`^(` + wordChar + `+)(?:\(([^)]+)\))?:\s*(.+)$`)

// leadingToken splits a message into its first whitespace/colon-delimited
// token and the remainder.
var leadingToken = regexp.MustCompile(`^[^\s:]+[\s:]+([^\s:].*)$`)

type looseRule struct {
	pattern  *regexp.Regexp
	category Category
}

// looseRules is evaluated in order and the first match wins.
var looseRules = []looseRule{
	leadingWord(`fix|fixes|fixed|fixing`, CategoryFix),
	leadingWord(`feat|feature|features|feat!`, CategoryFeat),
	leadingWord(`update|updates|updated|updating`, CategoryChore),
	leadingWord(`add|adds|added|adding`, CategoryFeat),
	leadingWord(`remove|removes|removed|removing`, CategoryChore),
	leadingWord(`refactor|refactors|refactored|refactoring`, CategoryRefactor),
	leadingWord(`doc|docs|document|documentation`, CategoryDocs),
	leadingWord(`test|tests|testing`, CategoryTest),
	leadingWord(`chore|chores`, CategoryChore),
	leadingWord(`style|styles|styling`, CategoryStyle),
	leadingWord(`perf|performance|optimize|optimizes|optimized`, CategoryPerf),
	leadingWord(`build|builds|building`, CategoryBuild),
	leadingWord(`ci|continuous integration`, CategoryCI),
	leadingWord(`revert|reverts|reverting`, CategoryRevert),
}

// leadingWord matches one of the alternatives at the start of a message,
// case-insensitively, when it is not followed by another word character.
func leadingWord(alternatives string, category Category) looseRule {
	return looseRule{
		pattern:  regexp.MustCompile(`(?i)^(` + alternatives + `)(?:[^\p{L}\p{N}_]|$)`),
		category: category,
	}
}

// Classifier classifies commit messages by semantic category.
type Classifier struct {
	loose bool
}

// NewClassifier creates a Classifier. When loose is false only the
// "type(scope): description" grammar is recognized.
func NewClassifier(loose bool) *Classifier {
	return &Classifier{loose: loose}
}

var defaultClassifier = NewClassifier(true)

// Classify classifies a message with the default classifier.
func Classify(message string) (Category, string, string) {
	return defaultClassifier.Classify(message)
}

// Classify returns the category, scope and description for a commit message.
// It never fails: messages that match no rule resolve to CategoryOther.
func (c *Classifier) Classify(message string) (category Category, scope string, description string) {
	if m := strictPattern.FindStringSubmatch(message); m != nil {
		return ParseCategory(m[1]), m[2], m[3]
	}

	if c.loose {
		for _, rule := range looseRules {
			if !rule.pattern.MatchString(message) {
				continue
			}
			description = message
			if m := leadingToken.FindStringSubmatch(message); m != nil {
				description = m[1]
			}
			return rule.category, "", description
		}
	}

	return CategoryOther, "", message
}
