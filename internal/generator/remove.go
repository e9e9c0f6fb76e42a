package generator

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/filters"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/tui"
)

// RemovePackageGenerator drops a package from the manifest and optionally
// deletes its directory.
type RemovePackageGenerator struct {
	Base

	PackageName string
	DeleteFiles bool
	Yes         bool

	packageName string
}

func (g *RemovePackageGenerator) Name() string { return "remove-package" }

func (g *RemovePackageGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	r.Guards.AssertAtLeastOnePackage()
	return nil
}

func (g *RemovePackageGenerator) Prompting(r *Run) error {
	name := g.PackageName
	if name == "" {
		answer, err := r.Prompter.Select(tui.SelectQuestion{
			Title:   "Package to remove",
			Options: nameOptions(r.Store.PackageNames()),
		})
		if err != nil {
			return err
		}
		name = answer
	}

	g.packageName = filters.PackageName(name)
	r.Guards.AssertPackageExists(g.packageName)
	if !r.CanConfigure() {
		return nil
	}

	return confirmRemoval(r, g.Yes, fmt.Sprintf(
		"Remove the package '%s' and its %d module(s)?", g.packageName, len(r.Store.ModuleNames(g.packageName)),
	))
}

func (g *RemovePackageGenerator) Configuring(r *Run) error {
	return r.Dispatch(store.RemovePackage(g.packageName))
}

func (g *RemovePackageGenerator) Writing(r *Run) error {
	if !g.DeleteFiles {
		return nil
	}
	return r.RemovePath(r.Workspace.PackagePath(g.packageName))
}

func (g *RemovePackageGenerator) Installing(r *Run) error {
	_, _ = fmt.Fprintf(r.Out, "\n%s\n",
		tui.SuccessStyle.Render(fmt.Sprintf("✓ Removed package %s", g.packageName)),
	)
	return nil
}

// RemoveModuleGenerator drops a module from the manifest, rewrites the
// package's modules index and optionally deletes the module directory.
type RemoveModuleGenerator struct {
	Base

	PackageName string
	ModuleName  string
	DeleteFiles bool
	Yes         bool

	packageName string
	moduleName  string
}

func (g *RemoveModuleGenerator) Name() string { return "remove-module" }

func (g *RemoveModuleGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	r.Guards.AssertAtLeastOnePackage()
	return nil
}

func (g *RemoveModuleGenerator) Prompting(r *Run) error {
	name := g.PackageName
	if name == "" {
		answer, err := r.Prompter.Select(tui.SelectQuestion{
			Title:   "Package of the module",
			Options: nameOptions(r.Store.PackageNames()),
		})
		if err != nil {
			return err
		}
		name = answer
	}

	g.packageName = filters.PackageName(name)
	r.Guards.AssertPackageHasModules(g.packageName)
	if !r.CanConfigure() {
		return nil
	}

	module := g.ModuleName
	if module == "" {
		answer, err := r.Prompter.Select(tui.SelectQuestion{
			Title:   "Module to remove",
			Options: nameOptions(r.Store.ModuleNames(g.packageName)),
		})
		if err != nil {
			return err
		}
		module = answer
	}

	g.moduleName = filters.ModuleName(module)
	r.Guards.AssertModuleExists(g.packageName, g.moduleName)
	if !r.CanConfigure() {
		return nil
	}

	return confirmRemoval(r, g.Yes, fmt.Sprintf(
		"Remove the module '%s' from the package '%s'?", g.moduleName, g.packageName,
	))
}

func (g *RemoveModuleGenerator) Configuring(r *Run) error {
	return r.Dispatch(store.RemoveModule(g.packageName, g.moduleName))
}

func (g *RemoveModuleGenerator) Writing(r *Run) error {
	if g.DeleteFiles {
		if err := r.RemovePath(r.Workspace.ModulePath(g.packageName, g.moduleName)); err != nil {
			return err
		}
	}

	if !r.FS.Exists(r.Workspace.PackagePath(g.packageName)) {
		return nil
	}
	return writeModulesIndex(r, g.packageName)
}

func (g *RemoveModuleGenerator) Installing(r *Run) error {
	_, _ = fmt.Fprintf(r.Out, "\n%s\n",
		tui.SuccessStyle.Render(fmt.Sprintf("✓ Removed module %s from package %s", g.moduleName, g.packageName)),
	)
	return nil
}

// confirmRemoval asks before a removal. Declining ends the run like an abort.
func confirmRemoval(r *Run, yes bool, title string) error {
	if yes {
		return nil
	}

	ok, err := r.Prompter.Confirm(tui.ConfirmQuestion{Title: title})
	if err != nil {
		return err
	}
	if !ok {
		return tui.ErrAborted
	}
	return nil
}

func nameOptions(names []string) []tui.Option {
	options := make([]tui.Option, 0, len(names))
	for _, name := range names {
		options = append(options, tui.Option{Label: name, Value: name})
	}
	return options
}
