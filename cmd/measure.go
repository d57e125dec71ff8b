package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/sizetrack/sizetrack-go/tracker"
)

// MeasureCmd creates the measure command.
func MeasureCmd() *cli.Command {
	return &cli.Command{
		Name:      "measure",
		Usage:     "Measure artifact files and record them for the current revision",
		ArgsUsage: "<files...>",
		Flags:     commonFlags(),
		Action:    measureAction,
	}
}

func measureAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no artifact files given")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, err := tracker.New(cfg, tracker.Options{RepoPath: c.String("repo")})
	if err != nil {
		return err
	}

	for _, path := range c.Args().Slice() {
		code, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read artifact: %w", err)
		}
		if err := p.OnAsset(filepath.Base(path), code); err != nil {
			return err
		}
	}

	return p.Close()
}
