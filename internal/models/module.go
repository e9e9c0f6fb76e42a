package models

import (
	"fmt"
	"strings"
)

// ModulePart is a file a module can be generated with.
type ModulePart string

const (
	PartCollection  ModulePart = "collection"
	PartFragments   ModulePart = "fragments"
	PartMutations   ModulePart = "mutations"
	PartParameters  ModulePart = "parameters"
	PartPermissions ModulePart = "permissions"
	PartResolvers   ModulePart = "resolvers"
	PartSchema      ModulePart = "schema"
)

// AllModuleParts lists every part in prompt order.
var AllModuleParts = []ModulePart{
	PartCollection,
	PartFragments,
	PartMutations,
	PartParameters,
	PartPermissions,
	PartResolvers,
	PartSchema,
}

// IsValid checks if the module part is known
func (p ModulePart) IsValid() bool {
	switch p {
	case PartCollection, PartFragments, PartMutations, PartParameters, PartPermissions, PartResolvers, PartSchema:
		return true
	default:
		return false
	}
}

// ParseModulePart parses a string into a ModulePart
func ParseModulePart(s string) (ModulePart, error) {
	part := ModulePart(strings.ToLower(strings.TrimSpace(s)))
	if !part.IsValid() {
		return "", fmt.Errorf("invalid module part: %s", s)
	}
	return part, nil
}

// Resolver is one of the default resolvers a module can ship with.
type Resolver string

const (
	ResolverList   Resolver = "list"
	ResolverSingle Resolver = "single"
	ResolverTotal  Resolver = "total"
)

// AllResolvers lists every default resolver in prompt order.
var AllResolvers = []Resolver{ResolverList, ResolverSingle, ResolverTotal}

// ParseResolver parses a string into a Resolver
func ParseResolver(s string) (Resolver, error) {
	r := Resolver(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case ResolverList, ResolverSingle, ResolverTotal:
		return r, nil
	default:
		return "", fmt.Errorf("invalid resolver: %s (must be list, single, or total)", s)
	}
}

// PartSet is the set of parts selected for a module. The collection part is
// always present.
type PartSet map[ModulePart]bool

// NewPartSet builds a set from parts, forcing the collection part on.
func NewPartSet(parts ...ModulePart) PartSet {
	set := PartSet{PartCollection: true}
	for _, part := range parts {
		set[part] = true
	}
	return set
}

// ParsePartSet parses part names into a set.
func ParsePartSet(names []string) (PartSet, error) {
	parts := make([]ModulePart, 0, len(names))
	for _, name := range names {
		part, err := ParseModulePart(name)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return NewPartSet(parts...), nil
}

// Has reports whether part is selected.
func (s PartSet) Has(part ModulePart) bool {
	return s[part]
}

// ResolverSet is the set of default resolvers selected for a module.
type ResolverSet map[Resolver]bool

// ParseResolverSet parses resolver names into a set.
func ParseResolverSet(names []string) (ResolverSet, error) {
	set := ResolverSet{}
	for _, name := range names {
		r, err := ParseResolver(name)
		if err != nil {
			return nil, err
		}
		set[r] = true
	}
	return set, nil
}

// ModuleProps is the data every module template is rendered with.
type ModuleProps struct {
	PackageName    string
	ModuleName     string
	CollectionName string
	TypeName       string

	NewMutationName     string
	NewPermission       string
	EditMutationName    string
	EditOwnPermission   string
	EditAllPermission   string
	RemoveMutationName  string
	RemoveOwnPermission string
	RemoveAllPermission string
	ParametersName      string

	ListResolverName   string
	SingleResolverName string
	TotalResolverName  string

	HasListResolver   bool
	HasSingleResolver bool
	HasTotalResolver  bool

	Parts PartSet

	ReactExtension string
}

// NewModuleProps derives every template name from the canonical module name.
// pascalName is the PascalCase form of moduleName.
func NewModuleProps(packageName, moduleName, pascalName string, parts PartSet, resolvers ResolverSet) *ModuleProps {
	props := &ModuleProps{
		PackageName:         packageName,
		ModuleName:          moduleName,
		CollectionName:      pascalName,
		TypeName:            pascalName,
		NewMutationName:     moduleName + "New",
		NewPermission:       moduleName + ".new",
		EditMutationName:    moduleName + "Edit",
		EditOwnPermission:   moduleName + ".edit.own",
		EditAllPermission:   moduleName + ".edit.all",
		RemoveMutationName:  moduleName + "Remove",
		RemoveOwnPermission: moduleName + ".remove.own",
		RemoveAllPermission: moduleName + ".remove.all",
		ParametersName:      moduleName + ".parameters",
		ListResolverName:    moduleName + "List",
		SingleResolverName:  moduleName + "Single",
		TotalResolverName:   moduleName + "Total",
		Parts:               parts,
	}

	if parts.Has(PartResolvers) {
		props.HasListResolver = resolvers[ResolverList]
		props.HasSingleResolver = resolvers[ResolverSingle]
		props.HasTotalResolver = resolvers[ResolverTotal]
	}

	return props
}

// PackageProps is the data package templates are rendered with.
type PackageProps struct {
	PackageName    string
	ModuleNames    []string
	ReactExtension string
}

// AppProps is the data app templates are rendered with.
type AppProps struct {
	AppName        string
	PackageManager string
	ReactExtension string
}
