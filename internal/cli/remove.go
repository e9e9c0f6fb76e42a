package cli

import (
	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command group
func NewRemoveCommand(env *environment) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a package or module",
		Long: `Remove a package or module from .vulcanrc.json.

Files stay on disk unless --delete-files is given.`,
	}

	cobraCmd.AddCommand(NewRemovePackageCommand(env))
	cobraCmd.AddCommand(NewRemoveModuleCommand(env))

	return cobraCmd
}

// RemovePackageCommand handles the remove package command
type RemovePackageCommand struct {
	env         *environment
	packageName string
	deleteFiles bool
	yes         bool
}

// NewRemovePackageCommand creates a new remove package command
func NewRemovePackageCommand(env *environment) *cobra.Command {
	cmd := &RemovePackageCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "package",
		Short: "Remove a package",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.packageName, "package", "p", "", "package to remove")
	cobraCmd.Flags().BoolVar(&cmd.deleteFiles, "delete-files", false, "also delete the package directory")
	cobraCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "do not ask for confirmation")

	return cobraCmd
}

// Run executes the remove package command
func (c *RemovePackageCommand) Run(cmd *cobra.Command, args []string) error {
	return c.env.run(cmd, &generator.RemovePackageGenerator{
		PackageName: c.packageName,
		DeleteFiles: c.deleteFiles,
		Yes:         c.yes,
	})
}

// RemoveModuleCommand handles the remove module command
type RemoveModuleCommand struct {
	env         *environment
	packageName string
	moduleName  string
	deleteFiles bool
	yes         bool
}

// NewRemoveModuleCommand creates a new remove module command
func NewRemoveModuleCommand(env *environment) *cobra.Command {
	cmd := &RemoveModuleCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "module",
		Short: "Remove a module from a package",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.packageName, "package", "p", "", "package of the module")
	cobraCmd.Flags().StringVarP(&cmd.moduleName, "module", "m", "", "module to remove")
	cobraCmd.Flags().BoolVar(&cmd.deleteFiles, "delete-files", false, "also delete the module directory")
	cobraCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "do not ask for confirmation")

	return cobraCmd
}

// Run executes the remove module command
func (c *RemoveModuleCommand) Run(cmd *cobra.Command, args []string) error {
	return c.env.run(cmd, &generator.RemoveModuleGenerator{
		PackageName: c.packageName,
		ModuleName:  c.moduleName,
		DeleteFiles: c.deleteFiles,
		Yes:         c.yes,
	})
}
