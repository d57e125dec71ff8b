// Package tracker records build artifact sizes per git revision and reports
// deltas against the previous recorded snapshot. A host build pipeline
// creates one Plugin per build, feeds every generated artifact through
// OnAsset and calls Close once the build finishes.
package tracker

import (
	"fmt"
	"io"

	"github.com/sizetrack/sizetrack-go/config"
	"github.com/sizetrack/sizetrack-go/internal/gitrev"
	"github.com/sizetrack/sizetrack-go/internal/history"
	"github.com/sizetrack/sizetrack-go/internal/report"
	"github.com/sizetrack/sizetrack-go/internal/size"
	"github.com/sizetrack/sizetrack-go/internal/store"
)

// Options holds the injected collaborators of a Plugin. Zero values fall
// back to the real environment: repository lookup from the working
// directory, revision from HEAD, output to stdout.
type Options struct {
	RepoPath string
	Out      io.Writer
	Git      gitrev.Describer
}

// Plugin tracks artifact sizes for one build. It owns the loaded history
// exclusively for the duration of the build; the host invokes OnAsset
// serially, so no locking is needed.
type Plugin struct {
	cfg     *config.Config
	printer *report.Printer
	hist    history.History
	prev    *history.Snapshot
	cur     *history.Snapshot
	write   bool
	closed  bool
}

// New loads the stored history and opens the snapshot for the current
// revision. The git repository is only consulted when the config leaves the
// revision id or the write policy underived.
func New(cfg *config.Config, opts Options) (*Plugin, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cfg.Path == "" {
		cfg.Path = config.DefaultStorePath
	}
	if opts.RepoPath == "" {
		opts.RepoPath = "."
	}
	if opts.Git == nil {
		opts.Git = gitrev.HeadDescriber{}
	}

	id := cfg.ID
	write := true
	if id == "" || cfg.Write == nil {
		rev, err := opts.Git.Describe(opts.RepoPath)
		if err != nil {
			return nil, err
		}
		if id == "" {
			id = rev.Short
		}
		write = rev.Clean
	}
	if cfg.Write != nil {
		write = *cfg.Write
	}

	hist, err := store.Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	prev, cur, hist := history.Resolve(hist, id)

	return &Plugin{
		cfg:     cfg,
		printer: &report.Printer{Out: opts.Out, Emoji: cfg.Emoji},
		hist:    hist,
		prev:    prev,
		cur:     cur,
		write:   write,
	}, nil
}

// ID returns the revision id the current build is recorded under.
func (p *Plugin) ID() string {
	return p.cur.ID
}

// OnAsset measures one generated artifact, records it under the current
// revision and prints the delta against the previous one. Artifacts
// filtered out by the configuration are ignored.
func (p *Plugin) OnAsset(name string, code []byte) error {
	if !p.cfg.Filters.Match(name) {
		return nil
	}

	sz, err := size.Measure(name, code)
	if err != nil {
		return err
	}
	if err := p.cur.Record(sz, p.cfg.Overwrite); err != nil {
		return err
	}

	p.printer.Line(sz, history.Diff(p.prev, sz))
	return nil
}

// Close persists the updated history. With writing disabled it only prints
// a warning and leaves the file untouched. Idempotent: a second call is a
// no-op.
func (p *Plugin) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if !p.write {
		p.printer.Warnf("sizetrack: writing disabled (dirty worktree or write=false), %s left untouched", p.cfg.Path)
		return nil
	}
	if err := store.Save(p.cfg.Path, p.hist); err != nil {
		return fmt.Errorf("save size history: %w", err)
	}
	return nil
}
