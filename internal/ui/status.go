package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/book-stack/internal/gh"
	"github.com/bjulian5/book-stack/internal/stack"
)

// Status icons
const (
	IconOpen     = "●"
	IconDraft    = "◐"
	IconMerged   = "◆"
	IconClosed   = "○"
	IconLocal    = "◯"
	IconModified = "◎"
	IconSynced   = "✓"
	IconNew      = "✚"
	IconPushed   = "↑"
)

// Status represents a PR or change status with rendering capabilities
type Status struct {
	Icon  string
	Label string
	State string // "open", "draft", "merged", "closed", "local", "new", "needs-push", "pushed", "synced"
	Style lipgloss.Style
}

// GetStatus returns a Status object for the given state
func GetStatus(state string) Status {
	switch state {
	case "open":
		return Status{Icon: IconOpen, Label: "Open", State: state, Style: StatusOpenStyle}
	case "draft":
		return Status{Icon: IconDraft, Label: "Draft", State: state, Style: StatusDraftStyle}
	case "merged":
		return Status{Icon: IconMerged, Label: "Merged", State: state, Style: StatusMergedStyle}
	case "closed":
		return Status{Icon: IconClosed, Label: "Closed", State: state, Style: StatusClosedStyle}
	case "new":
		return Status{Icon: IconNew, Label: "New", State: state, Style: StatusOpenStyle}
	case "pushed":
		return Status{Icon: IconPushed, Label: "Pushed", State: state, Style: SuccessStyle}
	case "needs-push":
		return Status{Icon: IconModified, Label: "Needs push", State: state, Style: StatusModifiedStyle}
	case "synced":
		return Status{Icon: IconSynced, Label: "Up to date", State: state, Style: SuccessStyle}
	default: // "local" or unknown
		return Status{Icon: IconLocal, Label: "Local", State: "local", Style: StatusLocalStyle}
	}
}

// GetPullRequestStatus returns the status of a pull request, or local when there is none
func GetPullRequestStatus(pr *gh.PullRequest) Status {
	if pr == nil {
		return GetStatus("local")
	}
	return GetStatus(pr.State)
}

// GetSyncStatus returns the status shown for a change after synchronization
func GetSyncStatus(r stack.Result) Status {
	switch {
	case r.State == stack.StateUnchanged:
		return GetStatus("synced")
	case r.Pushed:
		return GetStatus("pushed")
	case r.State == stack.StateDiverged:
		return GetStatus("needs-push")
	default:
		return GetStatus("new")
	}
}

// Render returns the full status with icon and label (e.g., "● Open")
func (s Status) Render() string {
	return s.Style.Render(s.Icon + " " + s.Label)
}

// RenderCompact returns just the styled icon
func (s Status) RenderCompact() string {
	return s.Style.Render(s.Icon)
}

// CountSyncResults counts results by outcome
func CountSyncResults(results []stack.Result) (created, updated, unchanged int) {
	for _, r := range results {
		switch r.State {
		case stack.StateNoRemote:
			created++
		case stack.StateDiverged:
			updated++
		case stack.StateUnchanged:
			unchanged++
		}
	}
	return
}
