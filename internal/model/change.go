package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Change is one bookmark-delimited segment of the stack. Each change is pushed to and
// tracked against exactly one pull request, identified by the head's bookmark name.
type Change struct {
	// ID identifies this snapshot inside a journal
	ID   string    `json:"id,omitempty"`
	Date time.Time `json:"date"`

	// Head is the bookmarked commit at the top of the segment
	Head Commit `json:"head"`

	// ChildHead is the segment's base: the previous segment's head, or the stack base
	ChildHead Commit `json:"child_head"`

	// Commits are ordered oldest first, base exclusive, head inclusive
	Commits []Commit `json:"commits"`
}

// NewChangeID generates a 16-character hex identifier for a change snapshot
func NewChangeID() string {
	hexStr := strings.ReplaceAll(uuid.New().String(), "-", "")
	return hexStr[:16]
}

// Name returns the bookmark name of the change's head.
func (c Change) Name() (string, error) {
	return c.Head.Name()
}

// IsEmpty reports whether the segment has no commits between its base and head.
func (c Change) IsEmpty() bool {
	return len(c.Commits) == 0
}

// CompareURL renders the code-hosting compare URL for this change.
//
// When the base is public the change targets the default branch and only the head
// is named; otherwise the comparison is against the previous bookmark.
func (c Change) CompareURL(repoURL string) (string, error) {
	head, err := c.Head.Name()
	if err != nil {
		return "", err
	}

	if c.ChildHead.IsPublic() {
		return fmt.Sprintf("%s/compare/%s", repoURL, head), nil
	}

	base, err := c.ChildHead.Name()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/compare/%s...%s", repoURL, base, head), nil
}
