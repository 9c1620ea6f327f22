package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-tmplenum/pkg/emit/template"
)

const templateExt = ".tpl"

// Filter is the plain-Go form of a pongo2 filter.
type Filter func(input any, param any) (any, error)

// Option configures an Engine.
type Option func(*Engine)

// WithOverrideDir looks up templates in dir before the embedded set, letting
// callers restyle generated files without rebuilding.
func WithOverrideDir(dir string) Option {
	return func(e *Engine) {
		e.overrideDir = strings.TrimSpace(dir)
	}
}

// WithGlobals seeds values visible to every template.
func WithGlobals(values map[string]any) Option {
	return func(e *Engine) {
		for key, value := range values {
			e.globals[key] = value
		}
	}
}

// WithFilter registers a filter. pongo2 filters are process wide; a name that
// already exists keeps its first definition.
func WithFilter(name string, fn Filter) Option {
	return func(e *Engine) {
		e.filters[name] = fn
	}
}

// Engine renders pongo2 templates. Every *.tpl file of the source filesystem
// is compiled by New, so template syntax errors surface at construction.
// Each render compiles again: pongo2 applies TrimBlocks to the token stream
// of a template on every Execute, so a reused template loses one more
// leading newline per run.
type Engine struct {
	set         *pongo2.TemplateSet
	files       map[string]string
	overrideDir string
	globals     pongo2.Context
	filters     map[string]Filter
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New compiles the templates found at the root of files.
func New(files fs.FS, options ...Option) (*Engine, error) {
	if files == nil {
		return nil, errors.New("pongo: template filesystem is required")
	}

	e := &Engine{
		files:    make(map[string]string),
		globals:  pongo2.Context{},
		filters:  map[string]Filter{"goident": identFilter},
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}

	for name, fn := range e.filters {
		if err := registerFilter(name, fn); err != nil {
			return nil, err
		}
	}

	loaders := make([]pongo2.TemplateLoader, 0, 2)
	if e.overrideDir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(e.overrideDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: override dir: %w", err)
		}
		loaders = append(loaders, local)
	}
	loaders = append(loaders, pongo2.NewFSLoader(files))

	e.set = pongo2.NewSet("tmplenum", loaders...)
	e.set.Options.TrimBlocks = true
	e.set.Options.LStripBlocks = true
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(e.globals)

	names, err := fs.Glob(files, "*"+templateExt)
	if err != nil {
		return nil, fmt.Errorf("pongo: list templates: %w", err)
	}
	for _, file := range names {
		if _, err := e.set.FromFile(file); err != nil {
			return nil, fmt.Errorf("pongo: compile %s: %w", file, err)
		}
		e.files[strings.TrimSuffix(path.Base(file), templateExt)] = file
	}
	return e, nil
}

// Templates lists the template names known to the engine.
func (e *Engine) Templates() []string {
	names := make([]string, 0, len(e.files))
	for name := range e.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderTemplate renders a known template, given by name with or without
// the .tpl extension, and copies the result to every writer in out.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	file, ok := e.files[strings.TrimSuffix(name, templateExt)]
	if !ok {
		return "", fmt.Errorf("pongo: template %q not found (have %s)", name, strings.Join(e.Templates(), ", "))
	}
	tmpl, err := e.set.FromFile(file)
	if err != nil {
		return "", fmt.Errorf("pongo: compile %s: %w", file, err)
	}
	return execute(tmpl, name, data, out)
}

// RenderString compiles and renders content.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return execute(tmpl, "inline template", data, out)
}

func execute(tmpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := asContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: %s data: %w", label, err)
	}
	rendered, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: render %s: %w", label, err)
	}
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return rendered, fmt.Errorf("pongo: write %s: %w", label, err)
		}
	}
	return rendered, nil
}

// asContext accepts maps directly and round-trips anything else through JSON,
// so struct fields are addressed by their json names.
func asContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	ctx := pongo2.Context{}
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("expected an object: %w", err)
	}
	return ctx, nil
}

func registerFilter(name string, fn Filter) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return nil
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

func identFilter(input any, _ any) (any, error) {
	return GoIdent(fmt.Sprint(input)), nil
}

// GoIdent converts an upper snake case placeholder name into an exported Go
// identifier: TMPL_TYPE_BINARY32 becomes TmplTypeBinary32.
func GoIdent(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
