package models

import (
	"sort"
	"strings"
)

// ProjectState is everything the generators track about a Vulcan project.
// It is loaded from the project manifest and written back on commit.
type ProjectState struct {
	// IsRecognizedProject is true once the directory was initialized by vulcan.
	IsRecognizedProject bool `json:"isRecognizedProject"`

	// Packages maps canonical (dash-case) package names to packages.
	Packages map[string]*Package `json:"packages"`

	// AppName is the dash-case application name given at init.
	AppName string `json:"appName,omitempty"`

	// ReactExtension is the file extension used for generated components ("jsx" or "js").
	ReactExtension string `json:"reactExtension,omitempty"`

	// PackageManager is the package manager the app was created with.
	PackageManager string `json:"packageManager,omitempty"`
}

// Package is a top-level grouping of modules.
type Package struct {
	Name    string             `json:"name"`
	Modules map[string]*Module `json:"modules"`
}

// Module is a unit of generated functionality inside a package.
type Module struct {
	Name string `json:"name"`
}

// NewProjectState returns the state of a directory vulcan has never seen.
func NewProjectState() ProjectState {
	return ProjectState{
		Packages: make(map[string]*Package),
	}
}

// NewPackage creates a package without modules.
func NewPackage(name string) *Package {
	return &Package{
		Name:    name,
		Modules: make(map[string]*Module),
	}
}

// Clone returns a deep copy so callers can never mutate shared maps. Nil
// packages come back empty.
func (s ProjectState) Clone() ProjectState {
	clone := s
	clone.Packages = make(map[string]*Package, len(s.Packages))
	for name, pkg := range s.Packages {
		if pkg == nil {
			clone.Packages[name] = NewPackage(name)
			continue
		}
		clone.Packages[name] = pkg.Clone()
	}
	return clone
}

// Clone returns a deep copy of the package.
func (p *Package) Clone() *Package {
	if p == nil {
		return nil
	}
	clone := NewPackage(p.Name)
	for name, mod := range p.Modules {
		if mod == nil {
			clone.Modules[name] = &Module{Name: name}
			continue
		}
		clone.Modules[name] = &Module{Name: mod.Name}
	}
	return clone
}

// SortNames orders names alphabetically ignoring case. Names differing only in
// case keep a stable byte order.
func SortNames(names []string) []string {
	sort.Slice(names, func(i, j int) bool {
		return compareNames(names[i], names[j]) < 0
	})
	return names
}

func compareNames(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
