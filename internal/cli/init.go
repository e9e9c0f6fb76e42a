package cli

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/spf13/cobra"
)

// InitCommand handles the init command
type InitCommand struct {
	env            *environment
	packageManager string
	reactExtension string
}

// NewInitCommand creates a new init command
func NewInitCommand(env *environment) *cobra.Command {
	cmd := &InitCommand{env: env}

	cobraCmd := &cobra.Command{
		Use:   "init [appName]",
		Short: "Create a new Vulcan.js app",
		Long:  `Create a new Vulcan.js app in the project directory and record it in .vulcanrc.json.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.packageManager, "package-manager", "", "package manager: npm or yarn")
	cobraCmd.Flags().StringVar(&cmd.reactExtension, "react-extension", "", "extension of React components: jsx or js")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	switch c.packageManager {
	case "", "npm", "yarn":
	default:
		return fmt.Errorf("invalid package manager: %s (must be npm or yarn)", c.packageManager)
	}
	switch c.reactExtension {
	case "", "jsx", "js":
	default:
		return fmt.Errorf("invalid react extension: %s (must be jsx or js)", c.reactExtension)
	}

	gen := &generator.AppGenerator{
		PackageManager: c.packageManager,
		ReactExtension: c.reactExtension,
	}
	if len(args) > 0 {
		gen.AppName = args[0]
	}

	return c.env.run(cmd, gen)
}
