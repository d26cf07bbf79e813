package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRepo is a throwaway git repository.
type TestRepo struct {
	Dir    string
	GitDir string
}

// NewTestRepo creates a git repository in a temporary directory with an initial commit
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()
	tempDir := t.TempDir()

	RunGit(t, tempDir, "init", "--initial-branch=main")

	// Set user name and email for reproducible commits
	RunGit(t, tempDir, "config", "user.email", "test@example.com")
	RunGit(t, tempDir, "config", "user.name", "Test User")

	repo := &TestRepo{
		Dir:    tempDir,
		GitDir: filepath.Join(tempDir, ".git"),
	}
	repo.Commit(t, "Initial commit")
	return repo
}

// Commit writes a file named after title, commits it, and returns the commit hash
func (r *TestRepo) Commit(t *testing.T, title string) string {
	t.Helper()

	testFile := filepath.Join(r.Dir, fmt.Sprintf("file-%s.txt", strings.ReplaceAll(title, " ", "-")))
	require.NoError(t, os.WriteFile(testFile, []byte(title+"\n"), 0644))

	RunGit(t, r.Dir, "add", ".")

	cmd := exec.Command("git", "commit", "-m", title)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE=2024-01-01T00:00:00Z",
		"GIT_COMMITTER_DATE=2024-01-01T00:00:00Z",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git commit failed: %s", string(output))

	return RunGit(t, r.Dir, "rev-parse", "HEAD")
}

// RunGit runs git in dir and returns trimmed stdout
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	return RunGitInput(t, dir, "", args...)
}

// RunGitInput runs git in dir with input on stdin and returns trimmed stdout
func RunGitInput(t *testing.T, dir string, input string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))

	return strings.TrimSpace(string(output))
}
