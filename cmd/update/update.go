package update

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/stack"
	"github.com/bjulian5/book-stack/internal/ui"
)

// Command pushes every change in the stack and relinks them with their pull requests
type Command struct {
	// Flags
	DryRun bool // Show what would happen without writing notes or pushing

	Clients *common.Clients
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "update",
		Short: "Push your current stack, relinking changes with their pull requests",
		Long: `Update your current stack.

Each change is pushed to remote/<bookmark>, from the bottom of the stack to the top.
A change whose pull request already points at the local head is skipped. Before a
change is pushed, the journal of its previous pushes is recorded as a git note on
the new head so the pull request can be found again after amends and rebases.

The first failure stops the update; changes above it are left untouched.

Example:
  book-stack update            # Push changed bookmarks
  book-stack update --dry-run  # Show what would be pushed`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Clients, err = common.InitClients(cobraCmd.Context())
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	command.Flags().BoolVar(&c.DryRun, "dry-run", false, "Show what would happen without pushing")

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	changes, err := c.Clients.Builder().Build(ctx)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		ui.Info("No bookmarked draft commits, nothing to update")
		return nil
	}

	if c.DryRun {
		ui.Info("Dry run: no notes will be written and nothing will be pushed")
	}

	ui.Header("Stack for: " + c.Clients.Repo.DefaultPath)

	results := make([]stack.Result, 0, len(changes))
	synchronizer := c.Clients.Synchronizer(stack.WithDryRun(c.DryRun))
	err = synchronizer.Sync(ctx, changes, func(r stack.Result) {
		if len(results) > 0 {
			ui.Print(ui.RenderSeparator(0))
		}
		results = append(results, r)
		ui.Print(ui.RenderSyncProgress(len(results), len(changes), r))
	})
	if err != nil {
		return err
	}

	ui.Print(ui.RenderSyncSummary(results, c.DryRun))
	return nil
}
