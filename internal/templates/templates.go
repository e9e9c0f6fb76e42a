// Package templates renders the files vulcan scaffolds.
//
// Every template carries a YAML header naming the file it produces:
//
//	---
//	to: lib/modules/index.js
//	part: collection
//	---
//
// `to` is itself a template and is relative to the directory the set is
// written into. `part` is optional and ties a module template to a ModulePart.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"
	"github.com/jakoblorz/go-vulcan/internal/filesystem"
	"github.com/jakoblorz/go-vulcan/internal/models"
)

//go:embed files
var embedded embed.FS

// Kind names a template set.
type Kind string

const (
	KindApp     Kind = "app"
	KindPackage Kind = "package"
	KindModule  Kind = "module"
)

// Template names used outside of full-set renders.
const (
	ModulesIndex = "modules_index.js"
)

const extension = ".tmpl"

type header struct {
	To   string `yaml:"to"`
	Part string `yaml:"part"`
}

// Template is one parsed scaffold file.
type Template struct {
	Name string
	Part models.ModulePart

	to   *template.Template
	body *template.Template
}

// File is a rendered template, Path relative to the set's target directory.
type File struct {
	Path    string
	Content []byte
}

// Set holds the templates of one Kind, sorted by name.
type Set struct {
	Kind      Kind
	Templates []*Template
}

// Load parses the embedded templates of kind.
func Load(kind Kind) (*Set, error) {
	dir := path.Join("files", string(kind))
	entries, err := fs.ReadDir(embedded, dir)
	if err != nil {
		return nil, fmt.Errorf("unknown template set %s: %w", kind, err)
	}

	set := &Set{Kind: kind}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}

		data, err := fs.ReadFile(embedded, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		tmpl, err := Parse(strings.TrimSuffix(entry.Name(), extension), data)
		if err != nil {
			return nil, err
		}
		set.Templates = append(set.Templates, tmpl)
	}

	sort.Slice(set.Templates, func(i, j int) bool {
		return set.Templates[i].Name < set.Templates[j].Name
	})

	return set, nil
}

// Parse parses a template with its header.
func Parse(name string, data []byte) (*Template, error) {
	var matter header
	rest, err := frontmatter.MustParse(bytes.NewReader(data), &matter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", name, err)
	}

	if strings.TrimSpace(matter.To) == "" {
		return nil, fmt.Errorf("template %s has no target path", name)
	}

	tmpl := &Template{Name: name}
	if matter.Part != "" {
		part, err := models.ParseModulePart(matter.Part)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		tmpl.Part = part
	}

	tmpl.to, err = newTemplate(name + ":to").Parse(matter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target of %s: %w", name, err)
	}

	tmpl.body, err = newTemplate(name).Parse(strings.TrimLeft(string(rest), "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	return tmpl, nil
}

func newTemplate(name string) *template.Template {
	return template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error")
}

// Lookup returns the template called name.
func (s *Set) Lookup(name string) (*Template, bool) {
	for _, tmpl := range s.Templates {
		if tmpl.Name == name {
			return tmpl, true
		}
	}
	return nil, false
}

// Render renders every template include accepts. A nil include renders all.
func (s *Set) Render(data any, include func(*Template) bool) ([]File, error) {
	var files []File
	for _, tmpl := range s.Templates {
		if include != nil && !include(tmpl) {
			continue
		}

		file, err := tmpl.Render(data)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// ForParts accepts module templates whose part is selected.
func ForParts(parts models.PartSet) func(*Template) bool {
	return func(tmpl *Template) bool {
		return tmpl.Part == "" || parts.Has(tmpl.Part)
	}
}

// Render renders the target path and the body of the template.
func (t *Template) Render(data any) (File, error) {
	var to bytes.Buffer
	if err := t.to.Execute(&to, data); err != nil {
		return File{}, fmt.Errorf("failed to render target of %s: %w", t.Name, err)
	}

	target := path.Clean(strings.TrimSpace(to.String()))
	if path.IsAbs(target) || target == "." || strings.HasPrefix(target, "../") || target == ".." {
		return File{}, fmt.Errorf("template %s renders outside its directory: %q", t.Name, target)
	}

	var body bytes.Buffer
	if err := t.body.Execute(&body, data); err != nil {
		return File{}, fmt.Errorf("failed to render template %s: %w", t.Name, err)
	}

	return File{Path: target, Content: body.Bytes()}, nil
}

// Status describes what Write did with a file.
type Status string

const (
	StatusCreate    Status = "create"
	StatusUpdate    Status = "update"
	StatusIdentical Status = "identical"
)

// Result is a file handled by Write.
type Result struct {
	Path   string
	Status Status
}

// Write writes files below baseDir. Files whose content is already on disk
// are left untouched and reported as identical.
func Write(fsys filesystem.FileSystem, baseDir string, files []File) ([]Result, error) {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		target := filepath.Join(baseDir, filepath.FromSlash(file.Path))

		status := StatusCreate
		if existing, err := fsys.ReadFile(target); err == nil {
			if bytes.Equal(existing, file.Content) {
				results = append(results, Result{Path: target, Status: StatusIdentical})
				continue
			}
			status = StatusUpdate
		}

		if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return results, fmt.Errorf("failed to create directory for %s: %w", target, err)
		}

		if err := fsys.WriteFile(target, file.Content, 0644); err != nil {
			return results, fmt.Errorf("failed to write %s: %w", target, err)
		}
		results = append(results, Result{Path: target, Status: status})
	}
	return results, nil
}
