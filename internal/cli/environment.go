package cli

import (
	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/generator"
	"github.com/jakoblorz/go-vulcan/internal/tui"
	"github.com/spf13/cobra"
)

// environment is what every command shares: the filesystem, the prompter and
// the global flags.
type environment struct {
	fs       filesystem.FileSystem
	prompter tui.Prompter

	dir   string
	debug bool
}

// run executes gen in a fresh session rooted at --dir.
func (e *environment) run(cmd *cobra.Command, gen generator.Generator) error {
	prompter := e.prompter
	if prompter == nil {
		prompter = tui.NewHuhPrompter(cmd.ErrOrStderr())
	}

	session, err := generator.NewSession(generator.SessionOptions{
		FS:       e.fs,
		StartDir: e.dir,
		Prompter: prompter,
		Out:      cmd.OutOrStdout(),
		Debug:    e.debug,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	return generator.NewRun(session).Execute(gen)
}
