package preview

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/ui"
)

// Command previews the current stack of changes
type Command struct {
	Clients *common.Clients
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "preview",
		Short: "Preview your current stack of changes",
		Long: `Preview your current stack of changes.

Lists every bookmarked change from the bottom of the stack to the top with its
pull request URL (or a compare URL if no pull request exists yet) and its commits.
Nothing is pushed.

Example:
  book-stack preview`,
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

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	changes, err := c.Clients.Builder().Build(ctx)
	if err != nil {
		return err
	}

	entries, err := c.Clients.Synchronizer().Describe(ctx, changes)
	if err != nil {
		return err
	}

	ui.Print(ui.RenderStackTree(c.Clients.Repo.DefaultPath, entries))
	return nil
}
