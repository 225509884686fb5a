package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history from a Git repository.
type HistoryReader struct {
	opts        ReadOptions
	filterCache map[string]bool
}

// NewHistoryReader creates a new history reader for the given repository.
// Glob patterns are validated up front so a bad pattern fails before git runs.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	if opts.RepoPath == "" {
		opts.RepoPath = "."
	}
	if opts.Backend == "" {
		opts.Backend = BackendGitCLI
	}
	if opts.Backend != BackendGitCLI && opts.Backend != BackendGoGit {
		return nil, fmt.Errorf("unknown history backend %q", opts.Backend)
	}
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return &HistoryReader{opts: opts, filterCache: make(map[string]bool)}, nil
}

// ReadCommits reads the commit log, newest first.
// An empty window yields an empty slice and no error.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]RawCommit, error) {
	if r.opts.Backend == BackendGoGit {
		return r.readCommitsGoGit(ctx)
	}
	return r.readCommitsGitCLI(ctx)
}

func (r *HistoryReader) readCommitsGoGit(ctx context.Context) ([]RawCommit, error) {
	repo, err := git.PlainOpenWithOptions(r.opts.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, r.opts.RepoPath, err)
	}

	from, err := r.resolveStart(repo)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) && isHeadRevision(r.opts.Branch) {
			// Freshly initialized repository without commits.
			return []RawCommit{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	logOpts := &git.LogOptions{
		From:  from,
		Order: git.LogOrderCommitterTime,
		Since: r.opts.Since,
		Until: r.opts.Until,
	}
	if len(r.opts.Include) > 0 || len(r.opts.Exclude) > 0 {
		logOpts.PathFilter = r.pathFilter
	}

	cIter, err := repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer cIter.Close()

	// Records go through the same line format as the git CLI so that
	// both backends share one parser and one set of skipping rules.
	var buf bytes.Buffer
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.opts.NoMerges && c.NumParents() > 1 {
			return nil
		}

		buf.WriteString(formatLogLine(RawCommit{
			Hash:    c.Hash.String(),
			Message: subjectLine(c.Message),
			Author:  c.Author.Name,
			Date:    c.Author.When.Format("2006-01-02"),
		}))
		buf.WriteByte('\n')
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return ParseLogLines(buf.Bytes()), nil
}

// resolveStart returns the commit the log walk starts from.
func (r *HistoryReader) resolveStart(repo *git.Repository) (plumbing.Hash, error) {
	if isHeadRevision(r.opts.Branch) {
		ref, err := repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}

	rev := strings.TrimSpace(r.opts.Branch)
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	return *hash, nil
}

// isHeadRevision reports whether rev names the checked-out commit.
func isHeadRevision(rev string) bool {
	rev = strings.TrimSpace(rev)
	return rev == "" || strings.EqualFold(rev, "HEAD")
}

// subjectLine returns the subject the way git's %s placeholder does: the
// first paragraph after any leading blank lines, with its lines joined by a
// single space and trailing whitespace removed from each line.
func subjectLine(message string) string {
	var parts []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func (r *HistoryReader) pathFilter(path string) bool {
	matched, err := r.matchesFilters(path)
	return err == nil && matched
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *HistoryReader) matchesFilters(path string) (bool, error) {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	if v, ok := r.filterCache[path]; ok {
		return v, nil
	}

	result, err := r.evalFilters(path)
	if err != nil {
		return false, err
	}
	r.filterCache[path] = result
	return result, nil
}

func (r *HistoryReader) evalFilters(path string) (bool, error) {
	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true, nil
	}

	for _, pattern := range r.opts.Include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
