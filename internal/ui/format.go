package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/book-stack/internal/model"
	"github.com/bjulian5/book-stack/internal/stack"
)

// Truncate truncates text to maxLen with an ellipsis if needed
// Uses lipgloss for proper ANSI-aware width handling
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	width := lipgloss.Width(text)
	if width <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}

	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

// RenderSeparator renders a horizontal separator line, as wide as the terminal when width is not positive
func RenderSeparator(width int) string {
	if width <= 0 {
		width = GetTerminalWidth()
	}
	return DimStyle.Render(strings.Repeat("─", width))
}

func RenderKeyValue(key string, value string) string {
	keyStyled := DimStyle.Render(key + ":")
	return fmt.Sprintf("%s %s", keyStyled, value)
}

// FormatCommit formats a commit as "<title> (<short node>)"
func FormatCommit(commit model.Commit) string {
	return fmt.Sprintf("%s %s", commit.Title, Dim(fmt.Sprintf("(%s)", shortHash(commit))))
}

func shortHash(commit model.Commit) string {
	hash := commit.ShortOrNode()
	if len(hash) > Display.CommitHashDisplayLength {
		hash = hash[:Display.CommitHashDisplayLength]
	}
	return hash
}

// FormatChangeFinderLine formats a change for fuzzy finder display.
// Fuzzy finder doesn't support ANSI codes, so we use plain text.
func FormatChangeFinderLine(position int, entry stack.Result) string {
	status := GetPullRequestStatus(entry.PullRequest)

	prLabel := "local"
	if entry.PullRequest != nil {
		prLabel = fmt.Sprintf("#%d", entry.PullRequest.Number)
	}

	return fmt.Sprintf("%d %s %s %s %s %s",
		position,
		status.Icon,
		entry.Name,
		prLabel,
		Truncate(entry.Change.Head.Title, Display.MaxTitleLength),
		shortHash(entry.Change.Head))
}

// FormatChangePreview formats a change for fuzzy finder preview window.
// Preview pane supports ANSI codes, so we can use styling.
func FormatChangePreview(entry stack.Result) string {
	lines := []string{
		RenderKeyValue("Bookmark", Bold(entry.Name)),
		RenderKeyValue("Head", Muted(entry.Change.Head.Node)),
		RenderKeyValue("Base", Muted(entry.Change.ChildHead.ShortOrNode())),
	}

	if entry.PullRequest != nil {
		status := GetStatus(entry.PullRequest.State)
		lines = append(lines, RenderKeyValue("PR", fmt.Sprintf("#%d (%s)", entry.PullRequest.Number, status.Render())))
	}
	lines = append(lines, RenderKeyValue("URL", Highlight(entry.URL)))

	if entry.Change.IsEmpty() {
		lines = append(lines, "", Dim("(no commits)"))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "", Bold("Commits:"))
	maxPreview := min(len(entry.Change.Commits), Display.MaxPreviewCommits)
	for _, commit := range entry.Change.Commits[:maxPreview] {
		lines = append(lines, "  - "+FormatCommit(commit))
	}
	if len(entry.Change.Commits) > maxPreview {
		lines = append(lines, Dim(fmt.Sprintf("  ... and %d more", len(entry.Change.Commits)-maxPreview)))
	}

	return strings.Join(lines, "\n")
}
