// Package templates loads named text templates from a directory and renders
// them against check variables.
package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
)

// ErrTemplateNotFound indicates a template name is not known to the loader.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer renders a named template with string variables.
type Renderer interface {
	Render(name string, vars map[string]string) (string, error)
}

// Loader holds templates read from a directory tree. Template names are
// slash-separated paths relative to the root, e.g. "src/main.go.tmpl".
type Loader struct {
	root      string
	templates map[string]*template.Template
}

// NewLoader parses every regular file under root. Hidden files and
// directories are skipped. An empty root yields an empty loader.
func NewLoader(root string) (*Loader, error) {
	l := &Loader{root: root, templates: make(map[string]*template.Template)}
	if root == "" {
		return l, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", name, err)
		}
		if err := l.Add(name, string(data)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates from %s: %w", root, err)
	}
	return l, nil
}

// Add parses text and registers it under name, replacing any previous
// template with the same name.
func (l *Loader) Add(name, text string) error {
	tpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	l.templates[name] = tpl
	return nil
}

// Names returns the registered template names, sorted.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the named template with vars as its data.
func (l *Loader) Render(name string, vars map[string]string) (string, error) {
	tpl, ok := l.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	data := make(map[string]string, len(vars))
	for k, v := range vars {
		data[k] = v
	}

	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return b.String(), nil
}
