package cli

import (
	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/spf13/cobra"
)

// ModuleCommand handles the module command
type ModuleCommand struct {
	env         *environment
	packageName string
	moduleName  string
	parts       []string
	resolvers   []string
	yes         bool
}

// NewModuleCommand creates a new module command
func NewModuleCommand(env *environment) *cobra.Command {
	cmd := &ModuleCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "module",
		Short: "Create a new module in a package",
		Long: `Create a new module in a package.

A module is a collection with its schema, fragments, mutations, parameters,
permissions and resolvers. When the package does not exist yet, vulcan offers
to create it first.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.packageName, "package", "p", "", "package the module belongs to")
	cobraCmd.Flags().StringVarP(&cmd.moduleName, "module", "m", "", "module name")
	cobraCmd.Flags().StringSliceVar(&cmd.parts, "parts", nil, "parts to generate (collection is always generated)")
	cobraCmd.Flags().StringSliceVar(&cmd.resolvers, "resolvers", nil, "default resolvers: list, single, total")
	cobraCmd.Flags().BoolVarP(&cmd.yes, "yes", "y", false, "accept defaults and create a missing package without asking")

	return cobraCmd
}

// Run executes the module command
func (c *ModuleCommand) Run(cmd *cobra.Command, args []string) error {
	gen := &generator.ModuleGenerator{
		PackageName: c.packageName,
		ModuleName:  c.moduleName,
		Yes:         c.yes,
	}

	if cmd.Flags().Changed("parts") {
		gen.Parts = nonNil(c.parts)
	}
	if cmd.Flags().Changed("resolvers") {
		gen.Resolvers = nonNil(c.resolvers)
	}

	return c.env.run(cmd, gen)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
