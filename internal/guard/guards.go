package guard

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/tui"
)

// ProjectReader is the part of the store the guards inspect.
type ProjectReader interface {
	IsRecognizedProject() bool
	PackageExists(packageName string) bool
	ModuleExists(packageName, moduleName string) bool
	PackageHasModules(packageName string) bool
	PackageCount() int
}

// Guards runs named checks against a project and records failures in a Registry.
type Guards struct {
	project  ProjectReader
	registry *Registry
}

// New creates Guards reading project and writing to registry.
func New(project ProjectReader, registry *Registry) *Guards {
	return &Guards{
		project:  project,
		registry: registry,
	}
}

// Registry returns the registry failures are recorded in.
func (g *Guards) Registry() *Registry {
	return g.registry
}

// AssertIsRecognizedProject registers KeyNotRecognizedProject outside a Vulcan project.
func (g *Guards) AssertIsRecognizedProject() {
	if g.project.IsRecognizedProject() {
		return
	}
	g.registry.Register(KeyNotRecognizedProject, fmt.Sprintf(
		"This is not a Vulcan.js project directory.\nYou cannot run Vulcan.js generators outside of a Vulcan.js project directory. To start one, run %s",
		command("vulcan init"),
	))
}

// AssertIsNotRecognizedProject registers KeyRecognizedProject inside a Vulcan project.
func (g *Guards) AssertIsNotRecognizedProject() {
	if !g.project.IsRecognizedProject() {
		return
	}
	g.registry.Register(KeyRecognizedProject,
		"You are already in a Vulcan.js project directory.\nYou may not run this command inside a Vulcan.js project directory.",
	)
}

// AssertPackageExists registers KeyPackageMissing when the package is unknown.
func (g *Guards) AssertPackageExists(packageName string) {
	if g.project.PackageExists(packageName) {
		return
	}
	g.registry.Register(KeyPackageMissing, fmt.Sprintf(
		"The package %s does not exist.\nIf you'd like to work on this package, you should create it first by running: %s",
		packageName, command("vulcan package "+packageName),
	))
}

// AssertPackageNotExists registers KeyPackageExists when the package is already tracked.
func (g *Guards) AssertPackageNotExists(packageName string) {
	if !g.project.PackageExists(packageName) {
		return
	}
	g.registry.Register(KeyPackageExists, fmt.Sprintf(
		"A package with the name: '%s' already exists.\nIf you'd like to overwrite this package, you should first run %s.",
		packageName, command("vulcan remove package -p "+packageName),
	))
}

// AssertModuleExists registers KeyModuleMissing when the module is unknown.
func (g *Guards) AssertModuleExists(packageName, moduleName string) {
	if g.project.ModuleExists(packageName, moduleName) {
		return
	}
	g.registry.Register(KeyModuleMissing, fmt.Sprintf(
		"The module %s under the package %s does not exist.\nIf you'd like to work on this module, you should create it first by running: %s",
		moduleName, packageName, command(fmt.Sprintf("vulcan module -p %s -m %s", packageName, moduleName)),
	))
}

// AssertModuleNotExists registers KeyModuleExists when the module is already tracked.
func (g *Guards) AssertModuleNotExists(packageName, moduleName string) {
	if !g.project.ModuleExists(packageName, moduleName) {
		return
	}
	g.registry.Register(KeyModuleExists, fmt.Sprintf(
		"A module with the name: '%s' under the package '%s' already exists.\nIf you'd like to overwrite this module, you should first run %s.",
		moduleName, packageName, command(fmt.Sprintf("vulcan remove module -p %s -m %s", packageName, moduleName)),
	))
}

// AssertAtLeastOnePackage registers KeyZeroPackages when no package is tracked.
func (g *Guards) AssertAtLeastOnePackage() {
	if g.project.PackageCount() > 0 {
		return
	}
	g.registry.Register(KeyZeroPackages, fmt.Sprintf(
		"The command you just ran requires at least 1 custom package to be present in your app.\nTo create a package, run %s",
		command("vulcan package"),
	))
}

// AssertPackageHasModules registers KeyZeroModules when the package holds no
// module. A missing package only records KeyPackageMissing.
func (g *Guards) AssertPackageHasModules(packageName string) {
	if !g.project.PackageExists(packageName) {
		g.AssertPackageExists(packageName)
		return
	}
	if g.project.PackageHasModules(packageName) {
		return
	}
	g.registry.Register(KeyZeroModules, fmt.Sprintf(
		"The command you just ran requires at least 1 module to be present in the package: '%s'.\nTo create a module in %s, run %s",
		packageName, packageName, command("vulcan module -p "+packageName),
	))
}

func command(s string) string {
	return tui.CommandStyle.Render(s)
}
