package gitrev

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository for revision tests.
func createTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	return tmpDir, repo
}

// addCommitToRepo writes a file and commits it, returning the commit hash.
func addCommitToRepo(t *testing.T, dir string, repo *git.Repository, filename, content string) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := w.Add(filename); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	hash, err := w.Commit("add "+filename, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	return hash
}

func TestHeadDescriber_CleanRepo(t *testing.T) {
	dir, repo := createTestRepo(t)
	hash := addCommitToRepo(t, dir, repo, "bundle.js", "console.log(1);\n")

	rev, err := HeadDescriber{}.Describe(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rev.Short) != shortHashLen {
		t.Errorf("Short = %q, expected %d characters", rev.Short, shortHashLen)
	}
	if rev.Short != hash.String()[:shortHashLen] {
		t.Errorf("Short = %q, expected prefix of HEAD %s", rev.Short, hash)
	}
	if !rev.Clean {
		t.Error("Clean = false, expected true right after a commit")
	}
}

func TestHeadDescriber_DirtyWorktree(t *testing.T) {
	dir, repo := createTestRepo(t)
	addCommitToRepo(t, dir, repo, "bundle.js", "console.log(1);\n")

	if err := os.WriteFile(filepath.Join(dir, "bundle.js"), []byte("console.log(2);\n"), 0644); err != nil {
		t.Fatalf("Failed to modify file: %v", err)
	}

	rev, err := HeadDescriber{}.Describe(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.Clean {
		t.Error("Clean = true, expected false with uncommitted changes")
	}
}

func TestHeadDescriber_SubdirectoryDetectsDotGit(t *testing.T) {
	dir, repo := createTestRepo(t)
	addCommitToRepo(t, dir, repo, "bundle.js", "console.log(1);\n")

	sub := filepath.Join(dir, "dist")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	if _, err := (HeadDescriber{}).Describe(sub); err != nil {
		t.Errorf("Describe from subdirectory failed: %v", err)
	}
}

func TestHeadDescriber_NotARepository(t *testing.T) {
	if _, err := (HeadDescriber{}).Describe(t.TempDir()); err == nil {
		t.Error("expected error outside a git repository")
	}
}

func TestMockDescriber(t *testing.T) {
	mock := NewMockDescriber(Revision{Short: "abc1234", Clean: true}, nil)

	rev, err := mock.Describe("ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.Short != "abc1234" || !rev.Clean {
		t.Errorf("rev = %+v, expected the predefined revision", rev)
	}
}
