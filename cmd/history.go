package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/sizetrack/sizetrack-go/internal/store"
)

// HistoryCmd creates the history command.
func HistoryCmd() *cli.Command {
	return &cli.Command{
		Name:   "history",
		Usage:  "Show all recorded revisions and their artifact sizes",
		Flags:  commonFlags(),
		Action: historyAction,
	}
}

func historyAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	h, err := store.Load(cfg.Path)
	if err != nil {
		return err
	}

	if len(h) == 0 {
		fmt.Println("No recorded revisions.")
		return nil
	}

	for _, snap := range h {
		color.Green("Revision %s", snap.ID)

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  Artifact\tOriginal\tGzip\tBrotli")
		for _, sz := range snap.Sizes {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				sz.Name,
				humanize.Bytes(uint64(sz.Original)),
				humanize.Bytes(uint64(sz.Gzip)),
				humanize.Bytes(uint64(sz.Brotli)),
			)
		}
		tw.Flush()
		fmt.Println()
	}

	return nil
}
