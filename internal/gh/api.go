package gh

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// APIClient looks up pull requests through the GitHub REST API
type APIClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewAPIClient creates a REST client for owner/repo on hostname authenticated with token
func NewAPIClient(ctx context.Context, hostname, token, owner, repo string) (*APIClient, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	// GitHub Enterprise serves the API under /api/v3/
	if hostname != "" && hostname != "github.com" {
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}
		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return newAPIClient(client, owner, repo), nil
}

func newAPIClient(client *github.Client, owner, repo string) *APIClient {
	return &APIClient{client: client, owner: owner, repo: repo}
}

// PullRequest finds the most recent pull request (any state) whose head is branch.
// Lookup failures are reported as absence, matching the gh CLI client.
func (c *APIClient) PullRequest(ctx context.Context, branch string) (*PullRequest, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branch),
		State: "all",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Debug("no pull request", "branch", branch, "reason", err)
		return nil, nil
	}

	if len(prs) == 0 {
		return nil, nil
	}

	return toPullRequest(prs[0]), nil
}

// toPullRequest converts a github.PullRequest to a PullRequest
func toPullRequest(pr *github.PullRequest) *PullRequest {
	state := normalizeState(pr.GetState(), pr.GetDraft())
	if state == "closed" && (pr.GetMerged() || pr.MergedAt != nil) {
		state = "merged"
	}

	return &PullRequest{
		Number:      pr.GetNumber(),
		URL:         pr.GetHTMLURL(),
		State:       state,
		BaseRefName: pr.GetBase().GetRef(),
		HeadRefName: pr.GetHead().GetRef(),
		HeadRefOid:  pr.GetHead().GetSHA(),
	}
}
