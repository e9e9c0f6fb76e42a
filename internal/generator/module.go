package generator

import (
	"fmt"

	"github.com/huandu/xstrings"
	"github.com/jakoblorz/go-vulcan/internal/filters"
	"github.com/jakoblorz/go-vulcan/internal/models"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/templates"
	"github.com/jakoblorz/go-vulcan/internal/tui"
)

// ModuleGenerator creates a module inside a package and registers it in the
// package's modules index. When the package does not exist it offers to
// create it first.
type ModuleGenerator struct {
	Base

	PackageName string
	ModuleName  string

	// Parts and Resolvers skip the matching prompts when not nil.
	Parts     []string
	Resolvers []string

	// Yes accepts every default and confirmation without asking.
	Yes bool

	props *models.ModuleProps
}

func (g *ModuleGenerator) Name() string { return "module" }

func (g *ModuleGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	return nil
}

func (g *ModuleGenerator) Prompting(r *Run) error {
	rawPackage := g.PackageName
	if rawPackage == "" {
		answer, err := r.Prompter.Input(tui.InputQuestion{
			Title:    "Package name",
			Default:  defaultPackage(r),
			Validate: requireName(filters.PackageName),
		})
		if err != nil {
			return err
		}
		rawPackage = answer
	}

	rawModule := g.ModuleName
	if rawModule == "" {
		answer, err := r.Prompter.Input(tui.InputQuestion{
			Title:    "Module name",
			Validate: requireName(filters.ModuleName),
		})
		if err != nil {
			return err
		}
		rawModule = answer
	}

	packageName := filters.PackageName(rawPackage)
	if packageName == "" {
		return fmt.Errorf("invalid package name %q", rawPackage)
	}
	moduleName := filters.ModuleName(rawModule)
	if moduleName == "" {
		return fmt.Errorf("invalid module name %q", rawModule)
	}

	parts, err := g.askParts(r)
	if err != nil {
		return err
	}

	resolvers := models.ResolverSet{}
	if parts.Has(models.PartResolvers) {
		resolvers, err = g.askResolvers(r)
		if err != nil {
			return err
		}
	}

	g.props = models.NewModuleProps(packageName, moduleName, filters.PascalName(moduleName), parts, resolvers)
	g.props.ReactExtension = r.ReactExtension()

	if !r.Store.PackageExists(packageName) {
		create := g.Yes
		if !create {
			create, err = r.Prompter.Confirm(tui.ConfirmQuestion{
				Title:   fmt.Sprintf("The package: '%s' does not exist. Would you like to create it?", packageName),
				Default: true,
			})
			if err != nil {
				return err
			}
		}

		if !create {
			r.Guards.AssertPackageExists(packageName)
			return nil
		}

		if err := r.Compose(&PackageGenerator{PackageName: packageName}); err != nil {
			return err
		}
	}

	r.Guards.AssertModuleNotExists(packageName, moduleName)
	return nil
}

func (g *ModuleGenerator) askParts(r *Run) (models.PartSet, error) {
	if g.Parts != nil {
		return models.ParsePartSet(g.Parts)
	}

	defaults := r.Config.DefaultParts()
	if g.Yes {
		return defaults, nil
	}

	options := make([]tui.Option, 0, len(models.AllModuleParts))
	for _, part := range models.AllModuleParts {
		options = append(options, tui.Option{
			Label:    partLabel(part),
			Value:    string(part),
			Selected: defaults.Has(part),
		})
	}

	answer, err := r.Prompter.MultiSelect(tui.MultiSelectQuestion{
		Title:   "Create with",
		Options: options,
	})
	if err != nil {
		return nil, err
	}
	return models.ParsePartSet(answer)
}

func (g *ModuleGenerator) askResolvers(r *Run) (models.ResolverSet, error) {
	if g.Resolvers != nil {
		return models.ParseResolverSet(g.Resolvers)
	}

	defaults := r.Config.DefaultResolverSet()
	if g.Yes {
		return defaults, nil
	}

	options := make([]tui.Option, 0, len(models.AllResolvers))
	for _, resolver := range models.AllResolvers {
		options = append(options, tui.Option{
			Label:    xstrings.FirstRuneToUpper(string(resolver)),
			Value:    string(resolver),
			Selected: defaults[resolver],
		})
	}

	answer, err := r.Prompter.MultiSelect(tui.MultiSelectQuestion{
		Title:   "Default resolvers",
		Options: options,
	})
	if err != nil {
		return nil, err
	}
	return models.ParseResolverSet(answer)
}

func (g *ModuleGenerator) Configuring(r *Run) error {
	return r.Dispatch(store.AddModule(g.props.PackageName, g.props.ModuleName))
}

func (g *ModuleGenerator) Writing(r *Run) error {
	modulePath := r.Workspace.ModulePath(g.props.PackageName, g.props.ModuleName)
	if err := r.WriteTemplates(templates.KindModule, modulePath, g.props, templates.ForParts(g.props.Parts)); err != nil {
		return err
	}

	return writeModulesIndex(r, g.props.PackageName)
}

func (g *ModuleGenerator) Installing(r *Run) error {
	_, _ = fmt.Fprintf(r.Out, "\n%s\n",
		tui.SuccessStyle.Render(fmt.Sprintf("✓ Created module %s in package %s", g.props.ModuleName, g.props.PackageName)),
	)
	return nil
}

// writeModulesIndex regenerates lib/modules/index.js of a package from the
// modules in the store.
func writeModulesIndex(r *Run, packageName string) error {
	return r.WriteTemplate(templates.KindPackage, templates.ModulesIndex, r.Workspace.PackagePath(packageName), &models.PackageProps{
		PackageName:    packageName,
		ModuleNames:    r.Store.ModuleNames(packageName),
		ReactExtension: r.ReactExtension(),
	})
}

// defaultPackage suggests the only package of a project.
func defaultPackage(r *Run) string {
	names := r.Store.PackageNames()
	if len(names) == 1 {
		return names[0]
	}
	return ""
}

func partLabel(part models.ModulePart) string {
	if part == models.PartCollection {
		return "Collection (always)"
	}
	return xstrings.FirstRuneToUpper(string(part))
}
