package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bjulian5/book-stack/internal/command"
)

const prViewFields = "number,url,state,isDraft,baseRefName,headRefName,headRefOid,reviewDecision"

// Client provides GitHub operations via gh CLI
type Client struct {
	repo string
	run  command.Runner
}

// NewClient creates a new GitHub client for repo (a URL or OWNER/REPO)
func NewClient(repo string) *Client {
	return &Client{repo: repo, run: command.Run}
}

// prJSON is the structure of `gh pr view --json` output
type prJSON struct {
	Number         int    `json:"number"`
	URL            string `json:"url"`
	State          string `json:"state"`
	IsDraft        bool   `json:"isDraft"`
	BaseRefName    string `json:"baseRefName"`
	HeadRefName    string `json:"headRefName"`
	HeadRefOid     string `json:"headRefOid"`
	ReviewDecision string `json:"reviewDecision"`
}

// toPullRequest converts a prJSON to a PullRequest
func (p *prJSON) toPullRequest() *PullRequest {
	return &PullRequest{
		Number:         p.Number,
		URL:            p.URL,
		State:          normalizeState(p.State, p.IsDraft),
		BaseRefName:    p.BaseRefName,
		HeadRefName:    p.HeadRefName,
		HeadRefOid:     p.HeadRefOid,
		ReviewDecision: p.ReviewDecision,
	}
}

// execGH executes a gh CLI command and returns the output
func (c *Client) execGH(ctx context.Context, args ...string) ([]byte, error) {
	output, err := c.run(ctx, "", "gh", args...)
	if err != nil {
		return nil, fmt.Errorf("gh CLI error: %w", err)
	}
	return output, nil
}

// PullRequest finds the pull request whose head is branch.
//
// gh does not distinguish "no pull request" from other failures, so any failure to
// query or decode is reported as absence (nil, nil). Only context cancellation is
// returned as an error.
func (c *Client) PullRequest(ctx context.Context, branch string) (*PullRequest, error) {
	output, err := c.execGH(ctx, "pr", "view", branch, "--repo", c.repo, "--json", prViewFields)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Debug("no pull request", "branch", branch, "reason", err)
		return nil, nil
	}

	var pr prJSON
	if err := json.Unmarshal(output, &pr); err != nil {
		slog.Debug("undecodable pull request", "branch", branch, "error", err)
		return nil, nil
	}

	return pr.toPullRequest(), nil
}

// OpenPR opens the pull request for branch in the browser using gh CLI
func (c *Client) OpenPR(ctx context.Context, branch string) error {
	_, err := c.execGH(ctx, "pr", "view", branch, "--repo", c.repo, "--web")
	return err
}

// normalizeState converts GitHub API state to our internal format
// GitHub returns: OPEN, CLOSED, MERGED (uppercase)
// We need: open, draft, closed, merged (lowercase, with draft derived from isDraft)
func normalizeState(state string, isDraft bool) string {
	state = strings.ToLower(state)

	if state == "open" && isDraft {
		return "draft"
	}

	return state
}
