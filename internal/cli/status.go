package cli

import (
	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates a new status command
func NewStatusCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare .vulcanrc.json with the packages on disk",
		Long: `Compare the packages and modules recorded in .vulcanrc.json with the
directories under the packages directory. Paths ignored by the root .gitignore
are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, &generator.StatusGenerator{})
		},
	}
}
