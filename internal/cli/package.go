package cli

import (
	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/spf13/cobra"
)

// PackageCommand handles the package command
type PackageCommand struct {
	env *environment
}

// NewPackageCommand creates a new package command
func NewPackageCommand(env *environment) *cobra.Command {
	cmd := &PackageCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "package [name]",
		Short: "Create a new package",
		Long:  `Create a new Meteor package under the packages directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the package command
func (c *PackageCommand) Run(cmd *cobra.Command, args []string) error {
	gen := &generator.PackageGenerator{}
	if len(args) > 0 {
		gen.PackageName = args[0]
	}

	return c.env.run(cmd, gen)
}
