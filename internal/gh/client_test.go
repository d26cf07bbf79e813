package gh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/book-stack/internal/command"
)

type fakeRunner struct {
	args   []string
	stdout string
	err    error
}

func (f *fakeRunner) run(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	f.args = append([]string{name}, args...)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.stdout), nil
}

func newTestClient(runner *fakeRunner) *Client {
	c := NewClient("https://github.com/owner/repo")
	c.run = runner.run
	return c
}

func TestClient_PullRequest(t *testing.T) {
	runner := &fakeRunner{stdout: `{
		"number": 12,
		"url": "https://github.com/owner/repo/pull/12",
		"state": "OPEN",
		"isDraft": false,
		"baseRefName": "main",
		"headRefName": "remote/feature-a",
		"headRefOid": "d4f1e2a3",
		"reviewDecision": "REVIEW_REQUIRED"
	}`}

	pr, err := newTestClient(runner).PullRequest(context.Background(), "feature-a")
	require.NoError(t, err)
	require.NotNil(t, pr)

	assert.Equal(t, &PullRequest{
		Number:         12,
		URL:            "https://github.com/owner/repo/pull/12",
		State:          "open",
		BaseRefName:    "main",
		HeadRefName:    "remote/feature-a",
		HeadRefOid:     "d4f1e2a3",
		ReviewDecision: "REVIEW_REQUIRED",
	}, pr)
	assert.Equal(t, []string{
		"gh", "pr", "view", "feature-a",
		"--repo", "https://github.com/owner/repo",
		"--json", prViewFields,
	}, runner.args)
}

func TestClient_PullRequestAbsent(t *testing.T) {
	t.Run("gh fails", func(t *testing.T) {
		runner := &fakeRunner{err: &command.Error{
			Name:     "gh",
			Stderr:   `no pull requests found for branch "feature-a"`,
			ExitCode: 1,
			Err:      errors.New("exit status 1"),
		}}

		pr, err := newTestClient(runner).PullRequest(context.Background(), "feature-a")
		assert.NoError(t, err)
		assert.Nil(t, pr)
	})

	t.Run("undecodable output", func(t *testing.T) {
		runner := &fakeRunner{stdout: "not json"}

		pr, err := newTestClient(runner).PullRequest(context.Background(), "feature-a")
		assert.NoError(t, err)
		assert.Nil(t, pr)
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		runner := &fakeRunner{err: errors.New("signal: killed")}

		pr, err := newTestClient(runner).PullRequest(ctx, "feature-a")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, pr)
	})
}

func TestClient_OpenPR(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, newTestClient(runner).OpenPR(context.Background(), "feature-a"))
	assert.Equal(t, []string{"gh", "pr", "view", "feature-a", "--repo", "https://github.com/owner/repo", "--web"}, runner.args)
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		state    string
		isDraft  bool
		expected string
	}{
		{"OPEN", false, "open"},
		{"OPEN", true, "draft"},
		{"CLOSED", false, "closed"},
		{"MERGED", false, "merged"},
		{"closed", true, "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeState(tt.state, tt.isDraft))
		})
	}
}
