package generator

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/filters"
	"github.com/jakoblorz/go-vulcan/internal/models"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/templates"
	"github.com/jakoblorz/go-vulcan/internal/tui"
)

// PackageGenerator creates a Meteor package under the packages directory.
type PackageGenerator struct {
	Base

	PackageName string

	packageName string
}

func (g *PackageGenerator) Name() string { return "package" }

func (g *PackageGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	return nil
}

func (g *PackageGenerator) Prompting(r *Run) error {
	name := g.PackageName
	if name == "" {
		answer, err := r.Prompter.Input(tui.InputQuestion{
			Title:       "Package name",
			Placeholder: "my-package",
			Validate:    requireName(filters.PackageName),
		})
		if err != nil {
			return err
		}
		name = answer
	}

	g.packageName = filters.PackageName(name)
	if g.packageName == "" {
		return fmt.Errorf("invalid package name %q", name)
	}

	r.Guards.AssertPackageNotExists(g.packageName)
	return nil
}

func (g *PackageGenerator) Configuring(r *Run) error {
	return r.Dispatch(store.AddPackage(g.packageName))
}

func (g *PackageGenerator) Writing(r *Run) error {
	return r.WriteTemplates(templates.KindPackage, r.Workspace.PackagePath(g.packageName), &models.PackageProps{
		PackageName:    g.packageName,
		ModuleNames:    r.Store.ModuleNames(g.packageName),
		ReactExtension: r.ReactExtension(),
	}, nil)
}

func (g *PackageGenerator) Installing(r *Run) error {
	_, _ = fmt.Fprintf(r.Out, "\n%s\n",
		tui.SuccessStyle.Render(fmt.Sprintf("✓ Created package %s", g.packageName)),
	)
	return nil
}
