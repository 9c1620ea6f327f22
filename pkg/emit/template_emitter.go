package emit

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
	"github.com/goliatone/go-tmplenum/pkg/emit/template"
	"github.com/goliatone/go-tmplenum/pkg/emit/template/pongo"
)

// TemplateEmitter renders a named template with the catalog table as data.
type TemplateEmitter struct {
	name        string
	contentType string
	template    string
	renderer    template.TemplateRenderer
	validate    func(*catalog.Catalog) error
}

// NewTemplateEmitter builds an emitter around any template renderer. The
// template receives "groups" (label, entries of name/value/goPad/cPad),
// "package" and "guard".
func NewTemplateEmitter(name, contentType, templateName string, renderer template.TemplateRenderer) *TemplateEmitter {
	return &TemplateEmitter{
		name:        name,
		contentType: contentType,
		template:    templateName,
		renderer:    renderer,
	}
}

// NewGoEmitter emits a Go source file with one const block per group.
func NewGoEmitter(renderer template.TemplateRenderer) *TemplateEmitter {
	e := NewTemplateEmitter("go", "text/x-go", "go", renderer)
	e.validate = checkGoIdents
	return e
}

// NewCEmitter emits a C header with one #define per entry.
func NewCEmitter(renderer template.TemplateRenderer) *TemplateEmitter {
	return NewTemplateEmitter("c", "text/x-c", "c", renderer)
}

func (e *TemplateEmitter) Name() string {
	return e.name
}

func (e *TemplateEmitter) ContentType() string {
	return e.contentType
}

func (e *TemplateEmitter) Emit(ctx context.Context, cat *catalog.Catalog, w io.Writer, options Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("emit: %s: catalog is required", e.name)
	}
	if e.renderer == nil {
		return fmt.Errorf("emit: %s: template renderer is nil", e.name)
	}
	if e.validate != nil {
		if err := e.validate(cat); err != nil {
			return err
		}
	}

	if _, err := e.renderer.RenderTemplate(e.template, tableData(cat, options.withDefaults()), w); err != nil {
		return fmt.Errorf("emit: %s: %w", e.name, err)
	}
	return nil
}

// tableData groups the effective entries by their declaring group. Groups
// left empty because every name was declared earlier are dropped.
func tableData(cat *catalog.Catalog, options Options) map[string]any {
	var (
		data  []any
		label string
		group []catalog.Entry
	)
	flush := func() {
		if len(group) > 0 {
			data = append(data, groupData(label, group))
		}
		group = nil
	}
	for _, entry := range cat.Effective() {
		if entry.Group != label {
			flush()
			label = entry.Group
		}
		group = append(group, entry)
	}
	flush()

	return map[string]any{
		"package": options.Package,
		"guard":   options.Guard,
		"groups":  data,
	}
}

func groupData(label string, group []catalog.Entry) map[string]any {
	goWidth, cWidth := 0, 0
	for _, entry := range group {
		goWidth = max(goWidth, len(pongo.GoIdent(entry.Name)))
		cWidth = max(cWidth, len(entry.Name))
	}

	entries := make([]any, 0, len(group))
	for _, entry := range group {
		entries = append(entries, map[string]any{
			"name":  entry.Name,
			"value": entry.Value,
			"goPad": strings.Repeat(" ", goWidth-len(pongo.GoIdent(entry.Name))),
			"cPad":  strings.Repeat(" ", cWidth-len(entry.Name)),
		})
	}
	return map[string]any{
		"label":   label,
		"entries": entries,
	}
}

func checkGoIdents(cat *catalog.Catalog) error {
	seen := make(map[string]string, cat.Len())
	for _, entry := range cat.Effective() {
		name := entry.Name
		ident := pongo.GoIdent(name)
		if other, dup := seen[ident]; dup {
			return fmt.Errorf("emit: go: %s and %s both map to identifier %s", other, name, ident)
		}
		seen[ident] = name
	}
	return nil
}
