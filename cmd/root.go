package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sizetrack/sizetrack-go/config"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "sizetrack",
		Usage:   "Track build artifact sizes across git revisions",
		Version: "1.0.0",
		Commands: []*cli.Command{
			MeasureCmd(),
			HistoryCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, commonFlags()...),
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Path of the size history file",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to the Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "id",
			Usage: "Revision id to record under (default: short HEAD hash)",
		},
		&cli.BoolFlag{
			Name:  "overwrite",
			Usage: "Replace measurements already recorded for this revision",
		},
		&cli.BoolFlag{
			Name:  "no-emoji",
			Usage: "Plain text labels instead of emoji",
		},
		&cli.BoolFlag{
			Name:  "write",
			Usage: "Force writing the history file even with a dirty worktree",
		},
		&cli.BoolFlag{
			Name:  "no-write",
			Usage: "Never write the history file",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of artifacts to track (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of artifacts to skip (can be specified multiple times)",
		},
	}
}

// loadConfig loads configuration from file or defaults, applying CLI
// overrides on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("path") {
		cfg.Path = c.String("path")
	}
	if c.IsSet("id") {
		cfg.ID = c.String("id")
	}
	if c.Bool("overwrite") {
		cfg.Overwrite = true
	}
	if c.Bool("no-emoji") {
		cfg.Emoji = false
	}
	if w := writeFlag(c); w != nil {
		cfg.Write = w
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// writeFlag turns the write/no-write flag pair into the tri-state policy:
// nil means "derive from worktree cleanliness".
func writeFlag(c *cli.Context) *bool {
	if c.Bool("no-write") {
		v := false
		return &v
	}
	if c.IsSet("write") {
		v := c.Bool("write")
		return &v
	}
	return nil
}

// legacyAction handles the default command behavior: bare file arguments
// behave like the measure command.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return MeasureCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
