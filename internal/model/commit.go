package model

import (
	"errors"
	"fmt"
)

// ErrNoBookmark is returned when a commit used as a segment boundary carries no bookmark.
var ErrNoBookmark = errors.New("no bookmark found, could not get a name")

// Phase is the mutability phase of a commit.
type Phase string

const (
	PhaseDraft  Phase = "draft"
	PhasePublic Phase = "public"
)

// Commit is an immutable snapshot of one revision as reported by the query engine.
type Commit struct {
	Node              string   `json:"node"`
	ShortNode         string   `json:"short_node"`
	Title             string   `json:"title"`
	Phase             Phase    `json:"phase"`
	Bookmarks         []string `json:"bookmarks"`
	PullRequestNumber *int     `json:"github_pull_request_number"`
}

// Name returns the first bookmark on the commit.
func (c Commit) Name() (string, error) {
	if len(c.Bookmarks) == 0 {
		return "", fmt.Errorf("commit %s: %w", c.ShortOrNode(), ErrNoBookmark)
	}
	return c.Bookmarks[0], nil
}

// IsPublic reports whether the commit has been published.
func (c Commit) IsPublic() bool {
	return c.Phase == PhasePublic
}

// ShortOrNode prefers the short hash for display.
func (c Commit) ShortOrNode() string {
	if c.ShortNode != "" {
		return c.ShortNode
	}
	return c.Node
}
