package cli

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/tui"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// NewRootCommand creates the root command. A nil prompter asks questions
// with huh forms on the command's stderr.
func NewRootCommand(fs filesystem.FileSystem, prompter tui.Prompter) *cobra.Command {
	env := &environment{fs: fs, prompter: prompter}

	rootCmd := &cobra.Command{
		Use:   "vulcan",
		Short: "Scaffold Vulcan.js apps, packages and modules",
		Long: `A CLI tool for scaffolding Vulcan.js projects.

Vulcan keeps track of the packages and modules it generated in .vulcanrc.json
at the project root.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&env.dir, "dir", "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&env.debug, "debug", false, "log debug output to stderr")

	// Add subcommands
	rootCmd.AddCommand(NewInitCommand(env))
	rootCmd.AddCommand(NewPackageCommand(env))
	rootCmd.AddCommand(NewModuleCommand(env))
	rootCmd.AddCommand(NewRemoveCommand(env))
	rootCmd.AddCommand(NewListCommand(env))
	rootCmd.AddCommand(NewStatusCommand(env))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand(filesystem.NewOSFileSystem(), nil)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
