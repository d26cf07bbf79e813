package configcmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/config"
	"github.com/bjulian5/book-stack/internal/ui"
)

// Command shows the effective configuration
type Command struct {
	Workspace *common.Workspace

	Out io.Writer
}

// Register registers the command and its subcommands with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration.

Configuration is read from <sl root>/.sl/book-stack.json (JSON with comments and
trailing commas are allowed). Missing fields use their defaults, and
BOOK_STACK_GITHUB_CLIENT and BOOK_STACK_LOG_FILE override the file.

Example:
  book-stack config
  book-stack config init`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Workspace, err = common.LoadWorkspace(cobraCmd.Context())
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	initCmd := &InitCommand{}
	initCmd.Register(command)

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	data, err := c.Workspace.Config.Encode()
	if err != nil {
		return err
	}

	ui.Print(ui.RenderKeyValue("Config", ui.Muted(c.Workspace.ConfigPath)))
	_, err = c.out().Write(data)
	return err
}

func (c *Command) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// InitCommand writes the default configuration file
type InitCommand struct {
	// Flags
	Force bool

	Workspace *common.Workspace
}

// Register registers the command with cobra
func (c *InitCommand) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Init(cobraCmd.Context())
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	command.Flags().BoolVarP(&c.Force, "force", "f", false, "Overwrite an existing config file")

	parent.AddCommand(command)
}

// Init resolves the config path without loading the existing file
func (c *InitCommand) Init(ctx context.Context) error {
	var err error
	c.Workspace, err = common.ResolveWorkspace(ctx)
	return err
}

// Run executes the command
func (c *InitCommand) Run(ctx context.Context) error {
	path := c.Workspace.ConfigPath

	if _, err := os.Stat(path); err == nil && !c.Force {
		if !ui.IsInteractive() {
			return fmt.Errorf("%s already exists: use --force to overwrite", path)
		}
		if !ui.Confirm(fmt.Sprintf("%s already exists. Type 'yes' to overwrite: ", path), "yes") {
			ui.Info("Cancelled")
			return nil
		}
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	ui.Successf("Wrote %s", path)
	return nil
}
