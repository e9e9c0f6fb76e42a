package workspace

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/manifest"
	"github.com/jakoblorz/go-vulcan/internal/models"
)

// ProjectBuilder helps create test projects
type ProjectBuilder struct {
	fs       *filesystem.MockFileSystem
	root     string
	appName  string
	packages map[string][]string
	onDisk   bool
}

// NewProjectBuilder creates a new ProjectBuilder rooted at root
func NewProjectBuilder(root string) *ProjectBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &ProjectBuilder{
		fs:       fs,
		root:     root,
		packages: make(map[string][]string),
	}
}

// Recognized marks the directory as an initialized Vulcan project
func (pb *ProjectBuilder) Recognized(appName string) *ProjectBuilder {
	pb.appName = appName
	return pb
}

// WithFiles also creates package.js and module directories on disk
func (pb *ProjectBuilder) WithFiles() *ProjectBuilder {
	pb.onDisk = true
	return pb
}

// AddPackage records a package with the given modules
func (pb *ProjectBuilder) AddPackage(name string, modules ...string) *ProjectBuilder {
	pb.packages[name] = append(pb.packages[name], modules...)
	return pb
}

// Build writes the manifest (when recognized) and returns the filesystem
func (pb *ProjectBuilder) Build() *filesystem.MockFileSystem {
	if pb.appName == "" && len(pb.packages) == 0 {
		return pb.fs
	}

	state := models.NewProjectState()
	state.IsRecognizedProject = pb.appName != ""
	state.AppName = pb.appName
	if state.IsRecognizedProject {
		state.ReactExtension = "jsx"
		state.PackageManager = "npm"
	}

	names := make([]string, 0, len(pb.packages))
	for name := range pb.packages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pkg := models.NewPackage(name)
		for _, mod := range pb.packages[name] {
			pkg.Modules[mod] = &models.Module{Name: mod}
			if pb.onDisk {
				pb.fs.AddFile(filepath.Join(pb.root, "packages", name, "lib", "modules", mod, "collection.js"), []byte("// collection\n"))
			}
		}
		state.Packages[name] = pkg

		if pb.onDisk {
			pb.fs.AddFile(filepath.Join(pb.root, "packages", name, PackageFile), []byte("// package\n"))
		}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		panic(err)
	}
	pb.fs.AddFile(filepath.Join(pb.root, manifest.FileName), data)

	return pb.fs
}

// FileSystem returns the mock filesystem
func (pb *ProjectBuilder) FileSystem() *filesystem.MockFileSystem {
	return pb.fs
}
