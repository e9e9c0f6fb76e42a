// Package store holds the in-memory project state for one vulcan command.
//
// All changes go through Dispatch, which runs the pure Reduce function. The
// state only reaches disk when the owner calls Commit.
package store

import (
	"fmt"

	"github.com/jakoblorz/go-vulcan/internal/models"
	"go.uber.org/zap"
)

// Top-level manifest keys written by Commit, in write order.
const (
	KeyIsRecognizedProject = "isRecognizedProject"
	KeyPackages            = "packages"
	KeyAppName             = "appName"
	KeyReactExtension      = "reactExtension"
	KeyPackageManager      = "packageManager"
)

// Store owns a ProjectState and funnels every mutation through Reduce.
type Store struct {
	state  models.ProjectState
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every dispatched action at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store seeded with initial.
func New(initial models.ProjectState, options ...Option) *Store {
	s := &Store{
		state:  initial.Clone(),
		logger: zap.NewNop(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Dispatch applies action to the current state.
func (s *Store) Dispatch(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	prev := s.state
	s.state = Reduce(prev, action)

	s.logger.Debug("dispatch",
		zap.String("type", string(action.Type)),
		zap.String("package", action.PackageName),
		zap.String("module", action.ModuleName),
		zap.Int("packagesBefore", len(prev.Packages)),
		zap.Int("packagesAfter", len(s.state.Packages)),
	)

	return nil
}

// State returns a deep copy of the current state.
func (s *Store) State() models.ProjectState {
	return s.state.Clone()
}

// Commit writes every top-level key of the state through persist.
func (s *Store) Commit(persist func(key string, value any) error) error {
	state := s.State()

	entries := []struct {
		key   string
		value any
	}{
		{KeyIsRecognizedProject, state.IsRecognizedProject},
		{KeyPackages, state.Packages},
		{KeyAppName, state.AppName},
		{KeyReactExtension, state.ReactExtension},
		{KeyPackageManager, state.PackageManager},
	}

	for _, entry := range entries {
		if err := persist(entry.key, entry.value); err != nil {
			return fmt.Errorf("failed to persist %s: %w", entry.key, err)
		}
	}

	s.logger.Debug("commit", zap.Int("packages", len(state.Packages)))
	return nil
}

// IsRecognizedProject reports whether the directory was initialized by vulcan.
func (s *Store) IsRecognizedProject() bool {
	return s.state.IsRecognizedProject
}

// AppName returns the recorded application name.
func (s *Store) AppName() string {
	return s.state.AppName
}

// ReactExtension returns the extension used for generated components.
func (s *Store) ReactExtension() string {
	return s.state.ReactExtension
}

// PackageExists reports whether a package with this canonical name exists.
// The name is not normalized.
func (s *Store) PackageExists(packageName string) bool {
	_, exists := s.state.Packages[packageName]
	return exists
}

// ModuleExists reports whether moduleName exists inside packageName.
func (s *Store) ModuleExists(packageName, moduleName string) bool {
	if !s.PackageExists(packageName) {
		return false
	}
	_, exists := s.state.Packages[packageName].Modules[moduleName]
	return exists
}

// PackageHasModules reports whether the package exists and has at least one module.
func (s *Store) PackageHasModules(packageName string) bool {
	if !s.PackageExists(packageName) {
		return false
	}
	return len(s.state.Packages[packageName].Modules) > 0
}

// PackageCount returns the number of tracked packages.
func (s *Store) PackageCount() int {
	return len(s.state.Packages)
}

// PackageNames returns all package names sorted alphabetically, ignoring case.
func (s *Store) PackageNames() []string {
	names := make([]string, 0, len(s.state.Packages))
	for name := range s.state.Packages {
		names = append(names, name)
	}
	return models.SortNames(names)
}

// ModuleNames returns the modules of a package sorted alphabetically, ignoring
// case. The result is empty when the package does not exist.
func (s *Store) ModuleNames(packageName string) []string {
	if !s.PackageExists(packageName) {
		return []string{}
	}

	modules := s.state.Packages[packageName].Modules
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	return models.SortNames(names)
}
