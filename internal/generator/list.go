package generator

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/filters"
	"github.com/jakoblorz/go-vulcan/internal/tui"
)

// ListPackagesGenerator prints the packages recorded in the manifest.
type ListPackagesGenerator struct {
	Base
}

func (g *ListPackagesGenerator) Name() string { return "list-packages" }

func (g *ListPackagesGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	r.Guards.AssertAtLeastOnePackage()
	return nil
}

func (g *ListPackagesGenerator) Writing(r *Run) error {
	_, _ = fmt.Fprintln(r.Out, tui.TitleStyle.Render("Packages"))
	for _, name := range r.Store.PackageNames() {
		_, _ = fmt.Fprintf(r.Out, "  %s %s\n",
			tui.SelectedStyle.Render(name),
			tui.SubtleStyle.Render(fmt.Sprintf("(%d modules)", len(r.Store.ModuleNames(name)))),
		)
	}
	return nil
}

// ListModulesGenerator prints the modules of one package.
type ListModulesGenerator struct {
	Base

	PackageName string

	packageName string
}

func (g *ListModulesGenerator) Name() string { return "list-modules" }

func (g *ListModulesGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	r.Guards.AssertAtLeastOnePackage()
	return nil
}

func (g *ListModulesGenerator) Prompting(r *Run) error {
	name := g.PackageName
	if name == "" {
		answer, err := r.Prompter.Select(tui.SelectQuestion{
			Title:   "Package",
			Options: nameOptions(r.Store.PackageNames()),
			Default: defaultPackage(r),
		})
		if err != nil {
			return err
		}
		name = answer
	}

	g.packageName = filters.PackageName(name)
	r.Guards.AssertPackageHasModules(g.packageName)
	return nil
}

func (g *ListModulesGenerator) Writing(r *Run) error {
	_, _ = fmt.Fprintln(r.Out, tui.TitleStyle.Render("Modules in "+g.packageName))
	for _, name := range r.Store.ModuleNames(g.packageName) {
		_, _ = fmt.Fprintf(r.Out, "  %s\n", tui.SelectedStyle.Render(name))
	}
	return nil
}
