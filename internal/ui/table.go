package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bjulian5/book-stack/internal/stack"
)

// NewStackTable creates a new table with book-stack styling defaults
// This is a thin wrapper around lipgloss/table with opinionated defaults
func NewStackTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderRow(false).
		BorderColumn(true).
		StyleFunc(defaultTableStyleFunc)
}

// defaultTableStyleFunc provides default styling for table cells
func defaultTableStyleFunc(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return TableHeaderStyle
	}
	return TableCellStyle
}

// RenderSyncTable renders one row per synchronized change
func RenderSyncTable(results []stack.Result) string {
	t := NewStackTable().Headers("#", "Bookmark", "Title", "State", "PR", "Commits")

	for i, r := range results {
		pr := "-"
		if r.PullRequest != nil {
			pr = fmt.Sprintf("#%d", r.PullRequest.Number)
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			r.Name,
			Truncate(r.Change.Head.Title, Display.MaxTitleLength),
			syncAction(r),
			pr,
			fmt.Sprintf("%d", len(r.Change.Commits)),
		)
	}

	return t.String()
}

func syncAction(r stack.Result) string {
	switch {
	case r.State == stack.StateUnchanged:
		return "unchanged"
	case r.Pushed:
		return "pushed"
	case r.DryRun:
		return "would push"
	default:
		return r.State.String()
	}
}
