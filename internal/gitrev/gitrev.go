package gitrev

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// shortHashLen matches the abbreviation git itself uses for rev-parse --short.
const shortHashLen = 7

// Revision identifies the working tree state a measurement is keyed by.
type Revision struct {
	Short string // abbreviated commit hash of HEAD
	Clean bool   // true when the working tree has no uncommitted changes
}

// Describer reports the current revision of a repository.
// This abstraction allows for easier testing and alternative id sources.
type Describer interface {
	Describe(repoPath string) (Revision, error)
}

// Compile-time interface conformance check.
var _ Describer = HeadDescriber{}

// HeadDescriber reads the revision from the repository HEAD.
type HeadDescriber struct{}

// Describe opens the repository at repoPath (walking up to find .git) and
// returns the abbreviated HEAD hash together with the worktree clean flag.
func (HeadDescriber) Describe(repoPath string) (Revision, error) {
	r, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Revision{}, fmt.Errorf("open git repository at %s: %w", repoPath, err)
	}

	head, err := r.Head()
	if err != nil {
		return Revision{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	w, err := r.Worktree()
	if err != nil {
		return Revision{}, fmt.Errorf("open worktree: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return Revision{}, fmt.Errorf("read worktree status: %w", err)
	}

	return Revision{
		Short: head.Hash().String()[:shortHashLen],
		Clean: status.IsClean(),
	}, nil
}
