package open

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/stack"
	"github.com/bjulian5/book-stack/internal/ui"
)

// Command opens a change's pull request in the browser
type Command struct {
	// Arguments
	Bookmark string

	// Clients
	Clients *common.Clients
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "open [bookmark]",
		Short: "Open a change's pull request in the browser",
		Long: `Open a change's pull request in the browser.

If no bookmark is provided, opens an interactive fuzzy finder to select a change
from the current stack. Changes without a pull request print their compare URL
instead.

Examples:
  book-stack open              # Interactive fuzzy finder
  book-stack open feature-a    # Open the pull request for feature-a`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Clients, err = common.InitClients(cobraCmd.Context())
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.Bookmark = args[0]
			}
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	changes, err := c.Clients.Builder().Build(ctx)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		ui.Info("No bookmarked draft commits in the current stack")
		return nil
	}

	entries, err := c.Clients.Synchronizer().Describe(ctx, changes)
	if err != nil {
		return err
	}

	selected, err := c.pick(entries)
	if err != nil || selected == nil {
		return err
	}

	if selected.PullRequest == nil {
		ui.Warningf("No pull request for %s yet, run 'book-stack update' to push it", selected.Name)
		ui.Print(selected.URL)
		return nil
	}

	if err := c.Clients.GH.OpenPR(ctx, selected.Branch); err != nil {
		return fmt.Errorf("failed to open PR in browser: %w", err)
	}
	ui.Successf("Opening PR #%d: %s", selected.PullRequest.Number, selected.Change.Head.Title)
	return nil
}

func (c *Command) pick(entries []stack.Result) (*stack.Result, error) {
	if c.Bookmark == "" {
		return ui.SelectChange(entries)
	}

	for i := range entries {
		if entries[i].Name == c.Bookmark {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("bookmark '%s' not found in the current stack", c.Bookmark)
}
