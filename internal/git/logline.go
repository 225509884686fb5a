package git

import (
	"bytes"
	"strings"
)

// logFieldSeparator delimits the fields of one log record.
const logFieldSeparator = "|"

// logPrettyFormat is passed to git log --pretty=format: and yields
// hash|subject|author|date, one record per line.
const logPrettyFormat = "%H|%s|%an|%ad"

// ParseLogLines parses git log output in the hash|message|author|date format.
// Blank lines and lines that do not split into exactly four fields are skipped.
func ParseLogLines(data []byte) []RawCommit {
	lines := bytes.Split(data, []byte{'\n'})
	commits := make([]RawCommit, 0, len(lines))
	for _, line := range lines {
		c, ok := ParseLogLine(string(line))
		if !ok {
			continue
		}
		commits = append(commits, c)
	}
	return commits
}

// ParseLogLine parses a single log record.
func ParseLogLine(line string) (RawCommit, bool) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return RawCommit{}, false
	}
	fields := strings.Split(line, logFieldSeparator)
	if len(fields) != 4 {
		return RawCommit{}, false
	}
	return RawCommit{
		Hash:    fields[0],
		Message: fields[1],
		Author:  fields[2],
		Date:    fields[3],
	}, true
}

// formatLogLine renders a commit in the same format git log produces for logPrettyFormat.
func formatLogLine(c RawCommit) string {
	return strings.Join([]string{c.Hash, c.Message, c.Author, c.Date}, logFieldSeparator)
}
