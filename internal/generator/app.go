package generator

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-vulcan/internal/filters"
	"github.com/jakoblorz/go-vulcan/internal/models"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/templates"
	"github.com/jakoblorz/go-vulcan/internal/tui"
)

// AppGenerator turns the project directory into a Vulcan project.
type AppGenerator struct {
	Base

	AppName        string
	PackageManager string
	ReactExtension string

	props *models.AppProps
}

func (g *AppGenerator) Name() string { return "app" }

func (g *AppGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsNotRecognizedProject()
	return nil
}

func (g *AppGenerator) Prompting(r *Run) error {
	name := g.AppName
	if name == "" {
		answer, err := r.Prompter.Input(tui.InputQuestion{
			Title:    "App name",
			Default:  filters.AppName(filepath.Base(r.Workspace.RootPath)),
			Validate: requireName(filters.AppName),
		})
		if err != nil {
			return err
		}
		name = answer
	}

	appName := filters.AppName(name)
	if appName == "" {
		return fmt.Errorf("invalid app name %q", name)
	}

	packageManager := g.PackageManager
	if packageManager == "" {
		answer, err := r.Prompter.Select(tui.SelectQuestion{
			Title: "Package manager",
			Options: []tui.Option{
				{Label: "npm", Value: "npm"},
				{Label: "yarn", Value: "yarn"},
			},
			Default: r.Config.PackageManager,
		})
		if err != nil {
			return err
		}
		packageManager = answer
	}

	reactExtension := g.ReactExtension
	if reactExtension == "" {
		answer, err := r.Prompter.Select(tui.SelectQuestion{
			Title: "React component extension",
			Options: []tui.Option{
				{Label: ".jsx", Value: "jsx"},
				{Label: ".js", Value: "js"},
			},
			Default: r.Config.ReactExtension,
		})
		if err != nil {
			return err
		}
		reactExtension = answer
	}

	g.props = &models.AppProps{
		AppName:        appName,
		PackageManager: packageManager,
		ReactExtension: reactExtension,
	}
	return nil
}

func (g *AppGenerator) Configuring(r *Run) error {
	return r.Dispatch(store.InitProject(g.props.AppName, g.props.ReactExtension, g.props.PackageManager))
}

func (g *AppGenerator) Writing(r *Run) error {
	if err := r.WriteTemplates(templates.KindApp, r.Workspace.RootPath, g.props, nil); err != nil {
		return err
	}

	if err := r.FS.MkdirAll(r.Workspace.PackagesDir(), 0755); err != nil {
		return fmt.Errorf("failed to create packages directory: %w", err)
	}
	return nil
}

func (g *AppGenerator) Installing(r *Run) error {
	_, _ = fmt.Fprintf(r.Out, "\n%s\n\nNext steps:\n  %s\n  %s\n  %s\n",
		tui.SuccessStyle.Render(fmt.Sprintf("✓ Created Vulcan.js app %s", g.props.AppName)),
		tui.CommandStyle.Render(g.props.PackageManager+" install"),
		tui.CommandStyle.Render("vulcan package"),
		tui.CommandStyle.Render(g.props.PackageManager+" start"),
	)
	return nil
}

// requireName rejects answers that filter down to nothing.
func requireName(filter func(string) string) func(string) error {
	return func(s string) error {
		if filter(s) == "" {
			return fmt.Errorf("name cannot be empty")
		}
		return nil
	}
}
