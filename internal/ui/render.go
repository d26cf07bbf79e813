package ui

import (
	"fmt"
	"strings"

	"github.com/bjulian5/book-stack/internal/stack"
)

// RenderSuccessMessage renders a success message with a checkmark icon
func RenderSuccessMessage(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// RenderInfoMessage renders an info message with an info icon
func RenderInfoMessage(msg string) string {
	return InfoStyle.Render("ℹ " + msg)
}

// RenderSyncProgress renders the outcome for one change during an update
// Example output:
//
//	✓ 1/3 feature-a ◎ Needs push
//	      https://github.com/owner/repo/pull/12
//	      - Add parser (a1b2c3d4e5f6)
func RenderSyncProgress(position, total int, r stack.Result) string {
	var output strings.Builder

	output.WriteString(SuccessStyle.Render(fmt.Sprintf("✓ %d/%d", position, total)))
	output.WriteString(" ")
	output.WriteString(Bold(r.Name))
	output.WriteString(" ")
	output.WriteString(GetSyncStatus(r).Render())
	if r.DryRun && r.State.NeedsPush() {
		output.WriteString(" ")
		output.WriteString(Dim("(dry run)"))
	}
	output.WriteString("\n")
	output.WriteString("      ")
	output.WriteString(Muted(r.URL))

	if r.Change.IsEmpty() {
		output.WriteString("\n      ")
		output.WriteString(Dim("(no commits)"))
	}
	for _, commit := range r.Change.Commits {
		output.WriteString("\n      - ")
		output.WriteString(FormatCommit(commit))
	}

	return output.String()
}

// RenderSyncSummary renders a summary after an update
func RenderSyncSummary(results []stack.Result, dryRun bool) string {
	var output strings.Builder

	output.WriteString("\n")
	if dryRun {
		output.WriteString(RenderInfoMessage("Dry run complete, nothing was pushed"))
	} else {
		output.WriteString(RenderSuccessMessage("Update complete!"))
	}
	output.WriteString("\n\n")

	if len(results) > 0 {
		output.WriteString(RenderSyncTable(results))
		output.WriteString("\n")
	}

	created, updated, unchanged := CountSyncResults(results)
	var parts []string
	if created > 0 {
		parts = append(parts, fmt.Sprintf("%d new", created))
	}
	if updated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", updated))
	}
	if unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", unchanged))
	}

	if len(parts) > 0 {
		output.WriteString(Dim("Changes: "))
		output.WriteString(strings.Join(parts, ", "))
	} else {
		output.WriteString(Dim("No changes in stack"))
	}

	return output.String()
}
