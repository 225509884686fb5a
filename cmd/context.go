package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commit-summary-go/config"
	"github.com/masmgr/commit-summary-go/internal/git"
	"github.com/masmgr/commit-summary-go/internal/output"
)

const defaultWindowDays = 365

// newHistoryReader builds the reader used by commands. Tests replace it.
var newHistoryReader = func(opts git.ReadOptions) (git.RepositoryReader, error) {
	return git.NewHistoryReader(opts)
}

// now is the clock used to anchor the trailing window.
var now = time.Now

// CommandContext holds common state for the summary command.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Since    *time.Time
	Until    *time.Time
	Title    string
	Commits  []git.RawCommit

	explicitRange bool
}

// NewCommandContext loads configuration, resolves the time window and
// reads the commit history.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := "."
	if c.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one repository path, got %d arguments", c.NArg())
	}
	if c.NArg() == 1 {
		repoPath = c.Args().First()
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return nil, err
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return nil, err
	}
	if until != nil {
		// Make the until date inclusive.
		end := until.Add(24*time.Hour - time.Nanosecond)
		until = &end
	}
	if since != nil && until != nil && since.After(*until) {
		return nil, fmt.Errorf("--since (%s) is after --until (%s)", c.String("since"), c.String("until"))
	}

	explicit := since != nil || until != nil
	if !explicit {
		start := now().AddDate(0, 0, -cfg.History.WindowDays)
		since = &start
	}

	backend, err := git.ParseBackend(cfg.History.Backend)
	if err != nil {
		return nil, err
	}

	reader, err := newHistoryReader(git.ReadOptions{
		RepoPath: repoPath,
		Branch:   cfg.History.Branch,
		Since:    since,
		Until:    until,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
		NoMerges: cfg.History.NoMerges,
		Backend:  backend,
	})
	if err != nil {
		return nil, err
	}

	commits, err := reader.ReadCommits(readContext(c))
	if err != nil {
		return nil, fmt.Errorf("failed to read commit history: %w", err)
	}

	title := windowTitle(cfg.History.WindowDays)
	if explicit {
		title = rangeTitle(c.String("since"), c.String("until"))
	}

	return &CommandContext{
		Config:        cfg,
		RepoPath:      displayPath(repoPath),
		Since:         since,
		Until:         until,
		Title:         title,
		Commits:       commits,
		explicitRange: explicit,
	}, nil
}

// HasCommits reports whether any commit was read.
func (ctx *CommandContext) HasCommits() bool {
	return len(ctx.Commits) > 0
}

// NoCommitsMessage describes an empty window.
func (ctx *CommandContext) NoCommitsMessage() string {
	if ctx.explicitRange {
		return "No commits found in the selected range."
	}
	if ctx.Config.History.WindowDays == defaultWindowDays {
		return "No commits found in the last year."
	}
	return fmt.Sprintf("No commits found in the last %d days.", ctx.Config.History.WindowDays)
}

// OutputOptions builds the writer options from flags and configuration.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:      getOutputFormat(ctx.Config.Report.Format),
		OutputPath:  c.String("output"),
		ShowAuthors: ctx.Config.Report.ShowAuthors,
		ShowDates:   ctx.Config.Report.ShowDates,
		Width:       ctx.Config.Report.Width,
	}
}

func windowTitle(days int) string {
	if days == defaultWindowDays {
		return "GIT COMMIT SUMMARY - LAST 12 MONTHS"
	}
	return fmt.Sprintf("GIT COMMIT SUMMARY - LAST %d DAYS", days)
}

func rangeTitle(since, until string) string {
	switch {
	case since != "" && until != "":
		return fmt.Sprintf("GIT COMMIT SUMMARY - %s TO %s", since, until)
	case since != "":
		return fmt.Sprintf("GIT COMMIT SUMMARY - SINCE %s", since)
	default:
		return fmt.Sprintf("GIT COMMIT SUMMARY - UNTIL %s", until)
	}
}

func displayPath(repoPath string) string {
	if abs, err := filepath.Abs(repoPath); err == nil {
		return abs
	}
	return repoPath
}

// readContext returns the context the history read runs under.
func readContext(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
