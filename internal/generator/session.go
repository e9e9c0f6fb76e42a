package generator

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jakoblorz/go-vulcan/internal/config"
	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/guard"
	"github.com/jakoblorz/go-vulcan/internal/logging"
	"github.com/jakoblorz/go-vulcan/internal/manifest"
	"github.com/jakoblorz/go-vulcan/internal/store"
	"github.com/jakoblorz/go-vulcan/internal/templates"
	"github.com/jakoblorz/go-vulcan/internal/tui"
	"github.com/jakoblorz/go-vulcan/internal/workspace"
	"go.uber.org/zap"
)

// Session is everything one command invocation works on. It owns the Store
// for the duration of the command.
type Session struct {
	FS        filesystem.FileSystem
	Workspace *workspace.Workspace
	Manifest  *manifest.File
	Config    *config.Config
	Store     *store.Store
	Guards    *guard.Guards
	Prompter  tui.Prompter
	Logger    *zap.Logger
	Out       io.Writer

	dirty bool
}

// SessionOptions configures NewSession.
type SessionOptions struct {
	FS       filesystem.FileSystem
	StartDir string
	Prompter tui.Prompter
	Out      io.Writer

	// Logger is used as is when set. Otherwise a debug logger is built when
	// Debug or the project configuration asks for one.
	Logger *zap.Logger
	Debug  bool
}

// NewSession locates the project, loads its configuration and manifest and
// seeds a Store from the manifest.
func NewSession(opts SessionOptions) (*Session, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	ws := workspace.New(opts.FS, workspace.WithStartDir(opts.StartDir))
	if err := ws.Detect(); err != nil {
		return nil, fmt.Errorf("failed to detect project: %w", err)
	}

	cfg, err := config.Load(opts.FS, ws.RootPath)
	if err != nil {
		return nil, err
	}
	ws.SetPackagesDir(cfg.PackagesDir)

	logger := opts.Logger
	if logger == nil {
		logger, err = logging.New(opts.Debug || cfg.Debug)
		if err != nil {
			return nil, err
		}
	}

	mf, err := manifest.Load(opts.FS, ws.RootPath)
	if err != nil {
		return nil, err
	}

	st := store.New(mf.State(), store.WithLogger(logger.Named("store")))

	logger.Debug("session",
		zap.String("root", ws.RootPath),
		zap.Bool("manifest", mf.Exists()),
		zap.String("packagesDir", cfg.PackagesDir),
	)

	return &Session{
		FS:        opts.FS,
		Workspace: ws,
		Manifest:  mf,
		Config:    cfg,
		Store:     st,
		Guards:    guard.New(st, guard.NewRegistry()),
		Prompter:  opts.Prompter,
		Logger:    logger,
		Out:       out,
	}, nil
}

// Close flushes the logger.
func (s *Session) Close() {
	_ = s.Logger.Sync()
}

// Registry returns the validation errors recorded so far.
func (s *Session) Registry() *guard.Registry {
	return s.Guards.Registry()
}

func (s *Session) CanPrompt() bool    { return s.Registry().HasNoErrors() }
func (s *Session) CanConfigure() bool { return s.Registry().HasNoErrors() }
func (s *Session) CanWrite() bool     { return s.Registry().HasNoErrors() }
func (s *Session) CanInstall() bool   { return s.Registry().HasNoErrors() }

// Dispatch applies action to the Store and marks the session for commit.
func (s *Session) Dispatch(action store.Action) error {
	if err := s.Store.Dispatch(action); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Commit persists the Store to the manifest when anything was dispatched.
func (s *Session) Commit() error {
	if !s.dirty {
		return nil
	}

	if err := s.Store.Commit(s.Manifest.Set); err != nil {
		return err
	}
	if err := s.Manifest.Save(); err != nil {
		return err
	}

	s.dirty = false
	s.Logger.Debug("manifest saved", zap.String("path", s.Manifest.Path()))
	return nil
}

// ReactExtension is the extension for React component files, taken from the
// manifest with the configuration as fallback.
func (s *Session) ReactExtension() string {
	if ext := s.Store.ReactExtension(); ext != "" {
		return ext
	}
	return s.Config.ReactExtension
}

// WriteTemplates renders the templates of kind that include accepts into
// baseDir and reports every created file.
func (s *Session) WriteTemplates(kind templates.Kind, baseDir string, data any, include func(*templates.Template) bool) error {
	set, err := templates.Load(kind)
	if err != nil {
		return err
	}

	files, err := set.Render(data, include)
	if err != nil {
		return err
	}

	return s.writeFiles(baseDir, files)
}

// WriteTemplate renders the single template name of kind into baseDir.
func (s *Session) WriteTemplate(kind templates.Kind, name, baseDir string, data any) error {
	set, err := templates.Load(kind)
	if err != nil {
		return err
	}

	tmpl, ok := set.Lookup(name)
	if !ok {
		return fmt.Errorf("template %s not found in %s", name, kind)
	}

	file, err := tmpl.Render(data)
	if err != nil {
		return err
	}

	return s.writeFiles(baseDir, []templates.File{file})
}

func (s *Session) writeFiles(baseDir string, files []templates.File) error {
	results, err := templates.Write(s.FS, baseDir, files)
	for _, result := range results {
		s.Logger.Debug("write", zap.String("path", result.Path), zap.String("status", string(result.Status)))

		style := tui.SuccessStyle
		if result.Status == templates.StatusIdentical {
			style = tui.SubtleStyle
		}
		_, _ = fmt.Fprintf(s.Out, "   %s %s\n", style.Render(string(result.Status)), tui.PathStyle.Render(s.Workspace.Rel(result.Path)))
	}
	return err
}

// RemovePath deletes path and everything below it.
func (s *Session) RemovePath(path string) error {
	if !s.FS.Exists(path) {
		return nil
	}
	if err := s.FS.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	s.Logger.Debug("remove", zap.String("path", path))
	_, _ = fmt.Fprintf(s.Out, "   %s %s\n", tui.ErrorStyle.Render("delete"), tui.PathStyle.Render(s.Workspace.Rel(filepath.Clean(path))))
	return nil
}
