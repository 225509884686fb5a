package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func (r *HistoryReader) readCommitsGitCLI(ctx context.Context) ([]RawCommit, error) {
	args := r.gitLogArgs()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: git log failed: %v: %s", ErrSourceUnavailable, err, strings.TrimSpace(stderr.String()))
	}

	return ParseLogLines(out), nil
}

// gitLogArgs builds the git log invocation for the reader's options.
func (r *HistoryReader) gitLogArgs() []string {
	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--pretty=format:" + logPrettyFormat,
		"--date=short",
	}

	if r.opts.NoMerges {
		args = append(args, "--no-merges")
	}
	if r.opts.Since != nil {
		args = append(args, fmt.Sprintf("--since=@%d", r.opts.Since.Unix()))
	}
	if r.opts.Until != nil {
		args = append(args, fmt.Sprintf("--until=@%d", r.opts.Until.Unix()))
	}

	if !isHeadRevision(r.opts.Branch) {
		args = append(args, strings.TrimSpace(r.opts.Branch))
	}

	if pathspecs := r.pathspecs(); len(pathspecs) > 0 {
		args = append(args, "--")
		args = append(args, pathspecs...)
	}

	return args
}

// pathspecs converts include/exclude globs to git pathspec magic.
func (r *HistoryReader) pathspecs() []string {
	specs := make([]string, 0, len(r.opts.Include)+len(r.opts.Exclude))
	for _, p := range r.opts.Include {
		specs = append(specs, ":(glob)"+p)
	}
	for _, p := range r.opts.Exclude {
		specs = append(specs, ":(exclude,glob)"+p)
	}
	return specs
}
