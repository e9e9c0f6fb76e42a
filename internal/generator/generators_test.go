package generator

import (
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/guard"
	"github.com/jakoblorz/go-vulcan/internal/manifest"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/tui"
	"github.com/jakoblorz/go-vulcan/internal/workspace"
	"github.com/stretchr/testify/require"
)

func packagePath(parts ...string) string {
	return filepath.Join(append([]string{testRoot, "packages"}, parts...)...)
}

func modulePath(pkg, mod string, file string) string {
	return packagePath(pkg, "lib", "modules", mod, file)
}

func TestAppGenerator_InitializesProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)

	prompter := tui.NewScriptedPrompter().
		Answer("App name", "My App").
		Answer("Package manager", "yarn")
	run, out := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&AppGenerator{}))

	state := loadState(t, fs)
	require.True(t, state.IsRecognizedProject)
	require.Equal(t, "my-app", state.AppName)
	require.Equal(t, "yarn", state.PackageManager)
	require.Equal(t, "jsx", state.ReactExtension)
	require.Empty(t, state.Packages)

	require.True(t, fs.Exists(filepath.Join(testRoot, "package.json")))
	require.True(t, fs.Exists(filepath.Join(testRoot, "client", "main.js")))
	require.True(t, fs.Exists(filepath.Join(testRoot, "packages")))
	require.Contains(t, fs.Content(filepath.Join(testRoot, "package.json")), `"name": "my-app"`)
	require.Contains(t, out.String(), "yarn install")
}

func TestAppGenerator_FlagsSkipPrompts(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)

	prompter := tui.NewScriptedPrompter()
	run, _ := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&AppGenerator{AppName: "shop", PackageManager: "npm", ReactExtension: "js"}))
	require.Empty(t, prompter.Asked)
	require.Equal(t, "js", loadState(t, fs).ReactExtension)
}

func TestAppGenerator_RefusesRecognizedProject(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").Build()
	prompter := tui.NewScriptedPrompter()
	run, out := newTestRun(t, fs, prompter)

	err := run.Execute(&AppGenerator{})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.True(t, run.Registry().Has(guard.KeyRecognizedProject))
	require.Empty(t, prompter.Asked)
	require.False(t, fs.Exists(filepath.Join(testRoot, "package.json")))
	snaps.MatchSnapshot(t, out.String())
}

func TestPackageGenerator_CreatesPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").Build()
	prompter := tui.NewScriptedPrompter().Answer("Package name", "Blog Posts")
	run, out := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&PackageGenerator{}))

	state := loadState(t, fs)
	require.Contains(t, state.Packages, "blog-posts")
	require.Empty(t, state.Packages["blog-posts"].Modules)

	for _, file := range []string{"package.js", "lib/client/main.js", "lib/server/main.js", "lib/modules/index.js"} {
		require.True(t, fs.Exists(packagePath("blog-posts", file)), file)
	}
	require.Contains(t, fs.Content(packagePath("blog-posts", "package.js")), `name: "blog-posts"`)
	snaps.MatchSnapshot(t, out.String())
}

func TestPackageGenerator_RequiresRecognizedProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&PackageGenerator{PackageName: "blog"})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyNotRecognizedProject}, errorKeys(run))
	require.False(t, fs.Exists(filepath.Join(testRoot, manifest.FileName)))
	require.False(t, fs.Exists(packagePath("blog")))
}

func TestPackageGenerator_RefusesExistingPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").Build()
	run, out := newTestRun(t, fs, nil)

	err := run.Execute(&PackageGenerator{PackageName: "Blog"})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyPackageExists}, errorKeys(run))
	require.Contains(t, out.String(), "vulcan remove package -p blog")
}

func TestModuleGenerator_InExistingPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").WithFiles().Build()
	run, _ := newTestRun(t, fs, nil)

	require.NoError(t, run.Execute(&ModuleGenerator{PackageName: "blog", ModuleName: "blog posts", Yes: true}))

	require.Equal(t, []string{"blogPosts"}, run.Store.ModuleNames("blog"))
	require.Contains(t, loadState(t, fs).Packages["blog"].Modules, "blogPosts")

	for _, file := range []string{"collection.js", "fragments.js", "mutations.js", "parameters.js", "permissions.js", "resolvers.js", "schema.js"} {
		require.True(t, fs.Exists(modulePath("blog", "blogPosts", file)), file)
	}

	index := fs.Content(packagePath("blog", "lib", "modules", "index.js"))
	require.Contains(t, index, "import './blogPosts/collection.js';")
	require.Contains(t, fs.Content(modulePath("blog", "blogPosts", "collection.js")), `collectionName: "BlogPosts"`)
}

func TestModuleGenerator_PromptsForParts(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").WithFiles().Build()
	prompter := tui.NewScriptedPrompter().
		Answer("Module name", "comment").
		Answer("Create with", []string{"schema"})
	run, _ := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&ModuleGenerator{}))

	require.Equal(t, []string{"Package name", "Module name", "Create with"}, prompter.Asked)
	require.True(t, fs.Exists(modulePath("blog", "comment", "collection.js")))
	require.True(t, fs.Exists(modulePath("blog", "comment", "schema.js")))
	require.False(t, fs.Exists(modulePath("blog", "comment", "resolvers.js")))
}

func TestModuleGenerator_AsksResolversWhenSelected(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").WithFiles().Build()
	prompter := tui.NewScriptedPrompter().
		Answer("Create with", []string{"resolvers"}).
		Answer("Default resolvers", []string{"single"})
	run, _ := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&ModuleGenerator{PackageName: "blog", ModuleName: "posts"}))

	resolvers := fs.Content(modulePath("blog", "posts", "resolvers.js"))
	require.Contains(t, resolvers, `"postsSingle"`)
	require.NotContains(t, resolvers, "postsList")
}

func TestModuleGenerator_CreatesMissingPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").Build()
	confirm := "The package: 'shop' does not exist. Would you like to create it?"
	prompter := tui.NewScriptedPrompter().Answer(confirm, true)
	run, _ := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&ModuleGenerator{PackageName: "Shop", ModuleName: "orders", Parts: []string{}}))

	require.Contains(t, prompter.Asked, confirm)
	state := loadState(t, fs)
	require.Contains(t, state.Packages, "shop")
	require.Contains(t, state.Packages["shop"].Modules, "orders")

	require.True(t, fs.Exists(packagePath("shop", "package.js")))
	require.True(t, fs.Exists(modulePath("shop", "orders", "collection.js")))
	require.Contains(t, fs.Content(packagePath("shop", "lib", "modules", "index.js")), "import './orders/collection.js';")
}

func TestModuleGenerator_DeclineMissingPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").Build()
	prompter := tui.NewScriptedPrompter().
		Answer("The package: 'shop' does not exist. Would you like to create it?", false)
	run, _ := newTestRun(t, fs, prompter)

	err := run.Execute(&ModuleGenerator{PackageName: "shop", ModuleName: "orders", Parts: []string{}})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyPackageMissing}, errorKeys(run))
	require.Empty(t, loadState(t, fs).Packages)
	require.False(t, fs.Exists(packagePath("shop")))
}

func TestModuleGenerator_RefusesExistingModule(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts").Build()
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&ModuleGenerator{PackageName: "blog", ModuleName: "Posts", Yes: true})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyModuleExists}, errorKeys(run))
}

func TestModuleGenerator_InvalidPartFlag(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").Build()
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&ModuleGenerator{PackageName: "blog", ModuleName: "posts", Parts: []string{"widgets"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid module part")
}

func TestRemovePackageGenerator_DeletesFiles(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts").AddPackage("shop").WithFiles().Build()
	run, out := newTestRun(t, fs, nil)

	require.NoError(t, run.Execute(&RemovePackageGenerator{PackageName: "blog", DeleteFiles: true, Yes: true}))

	state := loadState(t, fs)
	require.NotContains(t, state.Packages, "blog")
	require.Contains(t, state.Packages, "shop")
	require.False(t, fs.Exists(packagePath("blog")))
	require.True(t, fs.Exists(packagePath("shop", "package.js")))
	require.Contains(t, out.String(), "delete")
}

func TestRemovePackageGenerator_KeepsFilesByDefault(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").WithFiles().Build()
	prompter := tui.NewScriptedPrompter().Answer("Remove the package 'blog' and its 0 module(s)?", true)
	run, _ := newTestRun(t, fs, prompter)

	require.NoError(t, run.Execute(&RemovePackageGenerator{}))

	require.Equal(t, []string{"Package to remove", "Remove the package 'blog' and its 0 module(s)?"}, prompter.Asked)
	require.Empty(t, loadState(t, fs).Packages)
	require.True(t, fs.Exists(packagePath("blog", "package.js")))
}

func TestRemovePackageGenerator_DeclinedConfirmation(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").Build()
	run, out := newTestRun(t, fs, nil)

	require.NoError(t, run.Execute(&RemovePackageGenerator{PackageName: "blog"}))
	require.Contains(t, out.String(), "Aborted.")
	require.Contains(t, loadState(t, fs).Packages, "blog")
}

func TestRemovePackageGenerator_NoPackages(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").Build()
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&RemovePackageGenerator{PackageName: "blog", Yes: true})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyZeroPackages}, errorKeys(run))
}

func TestRemoveModuleGenerator_RewritesIndex(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts", "comments").WithFiles().Build()
	run, _ := newTestRun(t, fs, nil)

	require.NoError(t, run.Execute(&RemoveModuleGenerator{PackageName: "blog", ModuleName: "posts", DeleteFiles: true, Yes: true}))

	require.Equal(t, []string{"comments"}, run.Store.ModuleNames("blog"))
	require.False(t, fs.Exists(modulePath("blog", "posts", "collection.js")))
	require.True(t, fs.Exists(modulePath("blog", "comments", "collection.js")))

	index := fs.Content(packagePath("blog", "lib", "modules", "index.js"))
	require.Contains(t, index, "import './comments/collection.js';")
	require.NotContains(t, index, "posts")
}

func TestRemoveModuleGenerator_EmptyPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").Build()
	prompter := tui.NewScriptedPrompter()
	run, _ := newTestRun(t, fs, prompter)

	err := run.Execute(&RemoveModuleGenerator{PackageName: "blog", Yes: true})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyZeroModules}, errorKeys(run))
	require.Empty(t, prompter.Asked)
}

func TestRemoveModuleGenerator_MissingPackageOnlyReportsExistence(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts").Build()
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&RemoveModuleGenerator{PackageName: "shop", ModuleName: "orders", Yes: true})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyPackageMissing}, errorKeys(run))
}

func TestRemoveModuleGenerator_MissingModule(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts").Build()
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&RemoveModuleGenerator{PackageName: "blog", ModuleName: "orders", Yes: true})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyModuleMissing}, errorKeys(run))
}

func TestListPackagesGenerator(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("shop").AddPackage("Blog", "posts", "comments").Build()
	run, out := newTestRun(t, fs, nil)

	require.NoError(t, run.Execute(&ListPackagesGenerator{}))
	snaps.MatchSnapshot(t, out.String())
}

func TestListModulesGenerator(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts", "comments").Build()
	run, out := newTestRun(t, fs, nil)

	require.NoError(t, run.Execute(&ListModulesGenerator{}))
	snaps.MatchSnapshot(t, out.String())
}

func TestListModulesGenerator_EmptyPackage(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").Build()
	run, _ := newTestRun(t, fs, nil)

	err := run.Execute(&ListModulesGenerator{PackageName: "blog"})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Equal(t, []string{guard.KeyZeroModules}, errorKeys(run))
}

func TestDiff(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts").AddPackage("shop").WithFiles().Build()
	fs.AddFile(packagePath("extra", "package.js"), []byte("// extra\n"))
	fs.AddFile(modulePath("blog", "drafts", "collection.js"), []byte("// drafts\n"))
	require.NoError(t, fs.RemoveAll(packagePath("shop")))

	run, _ := newTestRun(t, fs, nil)
	require.NoError(t, run.Dispatch(store.AddModule("blog", "comments")))

	drift, err := Diff(run.Store, run.Workspace)
	require.NoError(t, err)
	require.Equal(t, []Drift{
		{Package: "blog", Module: "comments", Kind: DriftMissingOnDisk},
		{Package: "blog", Module: "drafts", Kind: DriftNotInManifest},
		{Package: "shop", Kind: DriftMissingOnDisk},
		{Package: "extra", Kind: DriftNotInManifest},
	}, drift)
}

func TestStatusGenerator_InSync(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog", "posts").WithFiles().Build()
	run, out := newTestRun(t, fs, nil)

	gen := &StatusGenerator{}
	require.NoError(t, run.Execute(gen))
	require.Empty(t, gen.Drift())
	require.Contains(t, out.String(), "1 package(s) in sync")
}

func TestStatusGenerator_ReportsDrift(t *testing.T) {
	fs := workspace.NewProjectBuilder(testRoot).Recognized("app").AddPackage("blog").Build()
	run, out := newTestRun(t, fs, nil)

	gen := &StatusGenerator{}
	require.NoError(t, run.Execute(gen))
	require.Len(t, gen.Drift(), 1)
	require.Contains(t, out.String(), "package blog: missing on disk")
}

func errorKeys(run *Run) []string {
	var keys []string
	for _, e := range run.Registry().Errors() {
		keys = append(keys, e.Key)
	}
	return keys
}
