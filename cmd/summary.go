package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commit-summary-go/config"
	"github.com/masmgr/commit-summary-go/internal/aggregation"
	"github.com/masmgr/commit-summary-go/internal/output"
	"github.com/masmgr/commit-summary-go/internal/semantic"
)

func summaryAction(c *cli.Context) error {
	status := newStatusPrinter(c.App.ErrWriter)
	if path := c.String("write-config"); path != "" {
		return writeConfig(c, status, path)
	}

	status.Info("Analyzing commits...")

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	// Also reached when every log line was malformed: nothing usable to report.
	if !ctx.HasCommits() {
		status.Warning("%s", ctx.NoCommitsMessage())
		return nil
	}

	classifier := semantic.NewClassifier(ctx.Config.Classifier.LooseFallback)
	commits := aggregation.ClassifyAll(ctx.Commits, classifier)

	report := &output.SummaryReport{
		RepoPath: ctx.RepoPath,
		Title:    ctx.Title,
		Summary:  aggregation.Aggregate(commits),
	}

	options := ctx.OutputOptions(c)
	if err := output.WriteReport(c.App.Writer, report, options); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if options.OutputPath != "" {
		status.Info("Summary written to %s", options.OutputPath)
	}
	return nil
}

func writeConfig(c *cli.Context, status statusPrinter, path string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	status.Info("Configuration written to %s", path)
	return nil
}
