package ui

import (
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bjulian5/book-stack/internal/stack"
)

// RenderStackTree renders the stack with one node per change and its commits
// Example output:
//
//	Stack for: https://github.com/owner/repo.git
//	├─ Change: https://github.com/owner/repo/pull/12
//	│  ├─ Add parser (a1b2c3d4e5f6)
//	│  ╰─ Wire parser (b2c3d4e5f6a7)
//	╰─ Change: https://github.com/owner/repo/compare/feature-a...feature-b
//	   ╰─ Tests (c3d4e5f6a7b8)
func RenderStackTree(defaultPath string, entries []stack.Result) string {
	t := tree.Root(TreeRootStyle.Render("Stack for: " + defaultPath))

	if len(entries) == 0 {
		t.Child(Dim("No bookmarked changes"))
	}

	for _, entry := range entries {
		status := GetPullRequestStatus(entry.PullRequest)
		node := tree.Root(status.RenderCompact() + " " + TreeItemStyle.Render("Change: "+entry.URL))

		if entry.Change.IsEmpty() {
			node.Child(Dim("(no commits)"))
		}
		for _, commit := range entry.Change.Commits {
			node.Child(FormatCommit(commit))
		}

		t.Child(node)
	}

	t.Enumerator(getRoundedEnumerator()).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(RenderTreeIndenter())

	return t.String()
}

// getRoundedEnumerator returns a custom rounded enumerator for trees
func getRoundedEnumerator() tree.Enumerator {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}

		if i == children.Length()-1 {
			return "╰─ "
		}
		return "├─ "
	}
}

// RenderTreeIndenter returns an indenter function for trees
func RenderTreeIndenter() tree.Indenter {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}

		if i == children.Length()-1 {
			return "   " // No vertical line after last child
		}
		return "│  "
	}
}
