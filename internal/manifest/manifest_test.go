package manifest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/models"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/stretchr/testify/require"
)

const testRoot = "/project"

func newFS() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testRoot)
	return fs
}

func TestLoad_MissingFileDefaults(t *testing.T) {
	f, err := Load(newFS(), testRoot)
	require.NoError(t, err)

	require.False(t, f.Exists())
	require.Equal(t, filepath.Join(testRoot, FileName), f.Path())
	state := f.State()
	require.False(t, state.IsRecognizedProject)
	require.NotNil(t, state.Packages)
	require.Empty(t, state.Packages)
}

func TestLoad_EmptyFileDefaults(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte("  \n"))

	f, err := Load(fs, testRoot)
	require.NoError(t, err)
	require.True(t, f.Exists())
	require.False(t, f.State().IsRecognizedProject)
}

func TestLoad_DecodesState(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte(`{
  "version": "v1.0.0",
  "isRecognizedProject": true,
  "appName": "my-app",
  "packages": {
    "blog": {"name": "blog", "modules": {"comment": {"name": "comment"}}},
    "shop": {}
  }
}`))

	f, err := Load(fs, testRoot)
	require.NoError(t, err)

	state := f.State()
	require.True(t, state.IsRecognizedProject)
	require.Equal(t, "my-app", state.AppName)
	require.Equal(t, "comment", state.Packages["blog"].Modules["comment"].Name)
	require.Equal(t, "shop", state.Packages["shop"].Name)
	require.NotNil(t, state.Packages["shop"].Modules)
}

func TestLoad_InvalidJSON(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte(`{not json`))

	_, err := Load(fs, testRoot)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoad_NewerMajorVersion(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte(`{"version": "v2.1.0", "isRecognizedProject": true}`))

	_, err := Load(fs, testRoot)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	require.Contains(t, err.Error(), "written by a newer vulcan")
}

func TestLoad_InvalidVersion(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte(`{"version": "latest"}`))

	_, err := Load(fs, testRoot)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoad_OlderMinorVersionAccepted(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte(`{"version": "v1.0.0-beta.1", "isRecognizedProject": true}`))

	f, err := Load(fs, testRoot)
	require.NoError(t, err)
	require.True(t, f.State().IsRecognizedProject)
}

func TestSave_CommitRoundTrip(t *testing.T) {
	fs := newFS()
	f, err := Load(fs, testRoot)
	require.NoError(t, err)

	s := store.New(f.State())
	require.NoError(t, s.Dispatch(store.InitProject("my-app", "jsx", "npm")))
	require.NoError(t, s.Dispatch(store.AddPackage("blog")))
	require.NoError(t, s.Dispatch(store.AddModule("blog", "comment")))

	require.NoError(t, s.Commit(f.Set))
	require.NoError(t, f.Save())

	reloaded, err := Load(fs, testRoot)
	require.NoError(t, err)
	require.Equal(t, s.State(), reloaded.State())

	// the temporary file is renamed away
	require.Equal(t, []string{filepath.Join(testRoot, FileName)}, fs.Paths())

	snaps.MatchSnapshot(t, fs.Content(filepath.Join(testRoot, FileName)))
}

func TestSave_PreservesUnknownKeys(t *testing.T) {
	fs := newFS()
	fs.AddFile(filepath.Join(testRoot, FileName), []byte(`{"isRecognizedProject": true, "packages": {}, "customTheme": {"primary": "#7D56F4"}}`))

	f, err := Load(fs, testRoot)
	require.NoError(t, err)

	s := store.New(f.State())
	require.NoError(t, s.Dispatch(store.AddPackage("blog")))
	require.NoError(t, s.Commit(f.Set))
	require.NoError(t, f.Save())

	content := fs.Content(filepath.Join(testRoot, FileName))
	require.Contains(t, content, `"customTheme"`)
	require.Contains(t, content, `"#7D56F4"`)
	require.Contains(t, content, `"version": "v1.0.0"`)

	var theme map[string]string
	reloaded, err := Load(fs, testRoot)
	require.NoError(t, err)
	ok, err := reloaded.Get("customTheme", &theme)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "#7D56F4", theme["primary"])
}

func TestSave_TwiceIsStable(t *testing.T) {
	fs := newFS()
	f, err := Load(fs, testRoot)
	require.NoError(t, err)

	s := store.New(models.NewProjectState())
	require.NoError(t, s.Dispatch(store.AddPackage("blog")))

	require.NoError(t, s.Commit(f.Set))
	require.NoError(t, f.Save())
	first := fs.Content(f.Path())

	require.NoError(t, s.Commit(f.Set))
	require.NoError(t, f.Save())
	second := fs.Content(f.Path())

	require.Equal(t, first, second)
	require.True(t, strings.HasSuffix(first, "}\n"))
}

func TestSave_MissingDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	f, err := Load(fs, "/nowhere")
	require.NoError(t, err)

	err = f.Save()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write manifest")
}

func TestGet_MissingKey(t *testing.T) {
	f, err := Load(newFS(), testRoot)
	require.NoError(t, err)

	var v string
	ok, err := f.Get("packageName", &v)
	require.NoError(t, err)
	require.False(t, ok)
}
