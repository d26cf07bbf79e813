package jsoncmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/model"
	"github.com/bjulian5/book-stack/internal/stack"
)

// Command prints the current stack as JSON
type Command struct {
	Builder *stack.Builder

	Out io.Writer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "json",
		Short: "Print your current stack state in JSON format",
		Long: `Print your current stack state in JSON format.

The output is a JSON array of changes ordered from the bottom of the stack to
the top, in the same shape as the journal entries recorded on push.

Example:
  book-stack json | jq '.[].head.bookmarks'`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Init(cobraCmd.Context())
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(command)
}

// Init binds the command to the current repository. Only sl is consulted.
func (c *Command) Init(ctx context.Context) error {
	var err error
	c.Builder, err = common.InitBuilder(ctx)
	return err
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	changes, err := c.Builder.Build(ctx)
	if err != nil {
		return err
	}
	return Write(c.out(), changes)
}

func (c *Command) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// Write encodes changes as a JSON array without a trailing newline
func Write(w io.Writer, changes []model.Change) error {
	if changes == nil {
		changes = []model.Change{}
	}

	data, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("failed to encode stack: %w", err)
	}

	_, err = w.Write(data)
	return err
}
