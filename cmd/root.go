package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/book-stack/cmd/configcmd"
	"github.com/bjulian5/book-stack/cmd/jsoncmd"
	"github.com/bjulian5/book-stack/cmd/open"
	"github.com/bjulian5/book-stack/cmd/preview"
	"github.com/bjulian5/book-stack/cmd/update"
	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "book-stack",
	Short: "Managing sapling stacks with bookmarks",
	Long: `book-stack manages a stack of bookmarked sapling commits as pull requests.

Each bookmark closes one change: the commits between it and the previous bookmark.
Every change is pushed to remote/<bookmark> and tracked by its own pull request,
and a journal of pushed revisions is kept in git notes so pull requests follow
their commits across amends and rebases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	common.Close()
	if err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&common.Flags.Verbose, "verbose", "v", false, "Log debug output, including every external command, to stderr")
	rootCmd.PersistentFlags().StringVar(&common.Flags.ConfigPath, "config", "", "Path to the config file (default <sl root>/.sl/book-stack.json)")

	// Register all commands
	commands := []Command{
		&preview.Command{},
		&jsoncmd.Command{},
		&update.Command{},
		&open.Command{},
		&configcmd.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
