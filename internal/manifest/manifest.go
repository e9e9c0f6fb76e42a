// Package manifest reads and writes the project manifest, the JSON file at a
// Vulcan project root that records which packages and modules vulcan created.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/mod/semver"
)

const (
	// FileName is the manifest file name at the project root.
	FileName = ".vulcanrc.json"

	// Version is the manifest schema version written by this build.
	Version = "v1.0.0"

	versionKey = "version"
)

// ErrUnsupportedVersion is returned when the manifest was written by a newer,
// incompatible vulcan.
var ErrUnsupportedVersion = errors.New("unsupported manifest version")

// File is a loaded manifest. Keys vulcan does not know about are kept as-is
// and written back on Save.
type File struct {
	fs     filesystem.FileSystem
	path   string
	raw    map[string]json.RawMessage
	state  models.ProjectState
	exists bool
}

// Load reads the manifest in dir. A missing or empty file yields the default
// state of an unrecognized directory.
func Load(fsys filesystem.FileSystem, dir string) (*File, error) {
	f := &File{
		fs:    fsys,
		path:  filepath.Join(dir, FileName),
		raw:   make(map[string]json.RawMessage),
		state: models.NewProjectState(),
	}

	data, err := fsys.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	f.exists = true

	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}

	if err := json.Unmarshal(data, &f.raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", f.path, err)
	}

	if err := checkVersion(f.raw); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &f.state); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", f.path, err)
	}
	normalize(&f.state)

	return f, nil
}

// Path returns the manifest path.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the manifest was present on disk when loaded.
func (f *File) Exists() bool {
	return f.exists
}

// State returns the project state decoded from the manifest.
func (f *File) State() models.ProjectState {
	return f.state.Clone()
}

// Get decodes the value stored under key into v. It reports whether the key exists.
func (f *File) Get(key string, v any) (bool, error) {
	raw, ok := f.raw[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("failed to decode manifest key %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key in memory. Nothing reaches disk until Save.
func (f *File) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode manifest key %s: %w", key, err)
	}
	f.raw[key] = data
	return nil
}

// Save writes every key to disk. The file is written to a temporary sibling
// first and renamed into place.
func (f *File) Save() error {
	version, err := json.Marshal(Version)
	if err != nil {
		return fmt.Errorf("failed to encode manifest version: %w", err)
	}
	f.raw[versionKey] = version

	data, err := json.MarshalIndent(f.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	data = append(data, '\n')

	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return fmt.Errorf("failed to generate temp name: %w", err)
	}
	tmpPath := f.path + "." + suffix + ".tmp"

	if err := f.fs.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := f.fs.Rename(tmpPath, f.path); err != nil {
		_ = f.fs.Remove(tmpPath)
		return fmt.Errorf("failed to replace manifest: %w", err)
	}

	f.exists = true
	return nil
}

func checkVersion(raw map[string]json.RawMessage) error {
	data, ok := raw[versionKey]
	if !ok {
		return nil
	}

	var version string
	if err := json.Unmarshal(data, &version); err != nil {
		return fmt.Errorf("%w: version must be a string", ErrUnsupportedVersion)
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, version)
	}
	if semver.Compare(semver.Major(version), semver.Major(Version)) > 0 {
		return fmt.Errorf("%w: %s was written by a newer vulcan (this build supports %s)", ErrUnsupportedVersion, version, semver.Major(Version))
	}
	return nil
}

func normalize(state *models.ProjectState) {
	if state.Packages == nil {
		state.Packages = make(map[string]*models.Package)
	}
	for name, pkg := range state.Packages {
		if pkg == nil {
			pkg = models.NewPackage(name)
			state.Packages[name] = pkg
		}
		if pkg.Name == "" {
			pkg.Name = name
		}
		if pkg.Modules == nil {
			pkg.Modules = make(map[string]*models.Module)
		}
		for modName, mod := range pkg.Modules {
			if mod == nil || mod.Name == "" {
				pkg.Modules[modName] = &models.Module{Name: modName}
			}
		}
	}
}
