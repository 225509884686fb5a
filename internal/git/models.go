package git

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrSourceUnavailable is returned when commit history cannot be read:
// the path is not a repository, the revision is unknown, or git could not run.
var ErrSourceUnavailable = errors.New("cannot read version-control history")

// RawCommit is one log entry as reported by version control.
type RawCommit struct {
	Hash    string // full hex hash
	Message string // first line of the commit message
	Author  string // author display name
	Date    string // author date, YYYY-MM-DD
}

// Backend selects how history is read.
type Backend string

const (
	// BackendGitCLI shells out to the git executable.
	BackendGitCLI Backend = "git"
	// BackendGoGit reads the repository in-process with go-git.
	BackendGoGit Backend = "go-git"
)

// ParseBackend parses a backend name. An empty string selects BackendGitCLI.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "git", "cli", "gitcli":
		return BackendGitCLI, nil
	case "go-git", "gogit":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("unknown history backend %q (expected git or go-git)", s)
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time
	Include  []string // Glob patterns to include
	Exclude  []string // Glob patterns to exclude
	NoMerges bool
	Backend  Backend
}
