package cli

import (
	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command group
func NewListCommand(env *environment) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List packages or modules",
	}

	cobraCmd.AddCommand(&cobra.Command{
		Use:   "packages",
		Short: "List the packages of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, &generator.ListPackagesGenerator{})
		},
	})
	cobraCmd.AddCommand(NewListModulesCommand(env))

	return cobraCmd
}

// ListModulesCommand handles the list modules command
type ListModulesCommand struct {
	env         *environment
	packageName string
}

// NewListModulesCommand creates a new list modules command
func NewListModulesCommand(env *environment) *cobra.Command {
	cmd := &ListModulesCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "modules",
		Short: "List the modules of a package",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.packageName, "package", "p", "", "package to list")

	return cobraCmd
}

// Run executes the list modules command
func (c *ListModulesCommand) Run(cmd *cobra.Command, args []string) error {
	return c.env.run(cmd, &generator.ListModulesGenerator{PackageName: c.packageName})
}
