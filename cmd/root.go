package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commit-summary-go/config"
	"github.com/masmgr/commit-summary-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "commit-summary",
		Usage:     "Summarize git commits from the last year by semantic commit type",
		Version:   "1.0.0",
		ArgsUsage: "[repository path]",
		Flags:     summaryFlags(),
		Action:    summaryAction,

		// Glob braces like "{a,b}" must reach doublestar intact.
		DisableSliceFlagSeparator: true,
	}
}

func summaryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "authors",
			Aliases: []string{"a"},
			Usage:   "Show commit authors",
		},
		&cli.BoolFlag{
			Name:    "dates",
			Aliases: []string{"d"},
			Usage:   "Show commit dates",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text, markdown, json, csv)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.IntFlag{
			Name:  "days",
			Usage: "Length of the trailing window in days (default: 365)",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Summarize commits since this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Summarize commits until this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch or revision to summarize (default: HEAD)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Only count commits touching paths matching these globs (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Ignore changes to paths matching these globs (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "no-merges",
			Usage: "Skip merge commits",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Only recognize \"type(scope): description\" messages; disable prefix guessing",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (git, go-git)",
		},
		&cli.StringFlag{
			Name:  "write-config",
			Usage: "Write the effective configuration to this path and exit",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return output.FormatMarkdown
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	default:
		return output.FormatText
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("days") {
		cfg.History.WindowDays = c.Int("days")
	}
	if c.IsSet("backend") {
		cfg.History.Backend = c.String("backend")
	}
	if c.IsSet("branch") {
		cfg.History.Branch = c.String("branch")
	}
	if c.Bool("no-merges") {
		cfg.History.NoMerges = true
	}
	if c.Bool("strict") {
		cfg.Classifier.LooseFallback = false
	}
	if c.IsSet("format") {
		cfg.Report.Format = c.String("format")
	}
	if c.Bool("authors") {
		cfg.Report.ShowAuthors = true
	}
	if c.Bool("dates") {
		cfg.Report.ShowDates = true
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	if cfg.History.WindowDays <= 0 {
		return nil, fmt.Errorf("window must be at least one day, got %d", cfg.History.WindowDays)
	}

	return cfg, nil
}

// normalizeArgs moves flags ahead of positional arguments so that flags may
// follow the repository path. Everything after "--" stays positional.
func normalizeArgs(args []string, flags []cli.Flag) []string {
	if len(args) == 0 {
		return args
	}

	takesValue := make(map[string]bool)
	for _, f := range flags {
		_, isBool := f.(*cli.BoolFlag)
		for _, name := range f.Names() {
			takesValue[name] = !isBool
		}
	}

	out := []string{args[0]}
	var positional []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		out = append(out, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(rest) {
			i++
			out = append(out, rest[i])
		}
	}

	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func run(app *cli.App, args []string) error {
	return app.Run(normalizeArgs(args, app.Flags))
}

// Run executes the CLI application.
func Run() {
	if err := run(App(), os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
