// Package workspace locates a Vulcan project on disk and knows where its
// packages and modules live.
package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/manifest"
)

const (
	// PackageFile marks a directory under the packages dir as a Meteor package.
	PackageFile = "package.js"

	defaultPackagesDir = "packages"
)

// Workspace is the directory a command operates on.
type Workspace struct {
	fs          filesystem.FileSystem
	startDir    string
	packagesDir string

	// RootPath is the project root: the nearest directory holding a manifest,
	// or the start directory when there is none.
	RootPath string

	// HasManifest reports whether a manifest was found.
	HasManifest bool
}

// Option configures workspace behavior.
type Option func(*Workspace)

// WithStartDir starts detection from dir instead of the working directory.
func WithStartDir(dir string) Option {
	return func(w *Workspace) {
		w.startDir = dir
	}
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem, options ...Option) *Workspace {
	ws := &Workspace{
		fs:          fs,
		packagesDir: defaultPackagesDir,
	}

	for _, option := range options {
		option(ws)
	}

	return ws
}

// Detect walks up from the start directory looking for a project manifest.
func (w *Workspace) Detect() error {
	start := w.startDir
	if start == "" {
		cwd, err := w.fs.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		start = cwd
	}

	if !filepath.IsAbs(start) {
		cwd, err := w.fs.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		start = filepath.Join(cwd, start)
	}

	if root, found := findDirUp(w.fs, start, manifest.FileName); found {
		w.RootPath = root
		w.HasManifest = true
		return nil
	}

	w.RootPath = filepath.Clean(start)
	w.HasManifest = false
	return nil
}

// SetPackagesDir changes the packages directory once configuration is known.
func (w *Workspace) SetPackagesDir(dir string) {
	if dir != "" {
		w.packagesDir = dir
	}
}

// PackagesDir returns the absolute packages directory.
func (w *Workspace) PackagesDir() string {
	return filepath.Join(w.RootPath, w.packagesDir)
}

// PackagePath returns the directory of a package.
func (w *Workspace) PackagePath(packageName string) string {
	return filepath.Join(w.PackagesDir(), packageName)
}

// ModulesDir returns the lib/modules directory of a package.
func (w *Workspace) ModulesDir(packageName string) string {
	return filepath.Join(w.PackagePath(packageName), "lib", "modules")
}

// ModulePath returns the directory of a module.
func (w *Workspace) ModulePath(packageName, moduleName string) string {
	return filepath.Join(w.ModulesDir(packageName), moduleName)
}

// Rel returns path relative to the project root, for display.
func (w *Workspace) Rel(path string) string {
	rel, err := filepath.Rel(w.RootPath, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// ScanPackages lists the package directories on disk: direct children of the
// packages dir that hold a package.js and are not ignored by the root .gitignore.
func (w *Workspace) ScanPackages() ([]string, error) {
	entries, err := w.fs.ReadDir(w.PackagesDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read packages directory: %w", err)
	}

	ignore, err := w.loadRootGitIgnore()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dir := filepath.Join(w.PackagesDir(), entry.Name())
		if ignore != nil {
			if match := ignore.Relative(w.Rel(dir), true); match != nil && match.Ignore() {
				continue
			}
		}

		if !w.fs.Exists(filepath.Join(dir, PackageFile)) {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// ScanModules lists the module directories of a package on disk.
func (w *Workspace) ScanModules(packageName string) ([]string, error) {
	entries, err := w.fs.ReadDir(w.ModulesDir(packageName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read modules of %s: %w", packageName, err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

func (w *Workspace) loadRootGitIgnore() (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(w.RootPath, ".gitignore")
	if !w.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := w.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), w.RootPath, nil), nil
}
