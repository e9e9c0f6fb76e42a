package generator

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/tui"
	"github.com/jakoblorz/go-vulcan/internal/workspace"
)

// DriftKind says on which side an entry is missing.
type DriftKind string

const (
	DriftMissingOnDisk DriftKind = "missing on disk"
	DriftNotInManifest DriftKind = "not in manifest"
)

// Drift is a package or module recorded in only one of manifest and disk.
// Module is empty for package-level drift.
type Drift struct {
	Package string
	Module  string
	Kind    DriftKind
}

func (d Drift) String() string {
	if d.Module == "" {
		return fmt.Sprintf("package %s: %s", d.Package, d.Kind)
	}
	return fmt.Sprintf("module %s/%s: %s", d.Package, d.Module, d.Kind)
}

// Diff compares the packages and modules in st with the directories on disk.
// Modules are only compared for packages present on both sides.
func Diff(st *store.Store, ws *workspace.Workspace) ([]Drift, error) {
	onDisk, err := ws.ScanPackages()
	if err != nil {
		return nil, err
	}
	diskSet := toSet(onDisk)

	var drift []Drift
	for _, name := range st.PackageNames() {
		if !diskSet[name] {
			drift = append(drift, Drift{Package: name, Kind: DriftMissingOnDisk})
			continue
		}

		modules, err := ws.ScanModules(name)
		if err != nil {
			return nil, err
		}
		moduleSet := toSet(modules)

		for _, module := range st.ModuleNames(name) {
			if !moduleSet[module] {
				drift = append(drift, Drift{Package: name, Module: module, Kind: DriftMissingOnDisk})
			}
			delete(moduleSet, module)
		}
		for _, module := range modules {
			if moduleSet[module] {
				drift = append(drift, Drift{Package: name, Module: module, Kind: DriftNotInManifest})
			}
		}
	}

	for _, name := range onDisk {
		if !st.PackageExists(name) {
			drift = append(drift, Drift{Package: name, Kind: DriftNotInManifest})
		}
	}

	return drift, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// StatusGenerator reports drift between the manifest and the packages
// directory.
type StatusGenerator struct {
	Base

	drift []Drift
}

func (g *StatusGenerator) Name() string { return "status" }

func (g *StatusGenerator) Initializing(r *Run) error {
	r.Guards.AssertIsRecognizedProject()
	return nil
}

func (g *StatusGenerator) Writing(r *Run) error {
	drift, err := Diff(r.Store, r.Workspace)
	if err != nil {
		return fmt.Errorf("failed to compare manifest with disk: %w", err)
	}
	g.drift = drift

	_, _ = fmt.Fprintln(r.Out, tui.TitleStyle.Render(fmt.Sprintf("Status of %s", r.Workspace.Rel(r.Workspace.PackagesDir()))))

	if len(drift) == 0 {
		_, _ = fmt.Fprintf(r.Out, "%s\n", tui.SuccessStyle.Render(fmt.Sprintf(
			"✓ %d package(s) in sync with the manifest", r.Store.PackageCount(),
		)))
		return nil
	}

	for _, d := range drift {
		_, _ = fmt.Fprintf(r.Out, "  %s\n", tui.ErrorStyle.Render(d.String()))
	}
	return nil
}

// Drift returns what the last run found.
func (g *StatusGenerator) Drift() []Drift {
	return g.drift
}
