package expand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
)

type replacement struct {
	token string
	value string
}

// Engine expands placeholder tokens using a fixed catalog. An Engine holds no
// per-call state and can be reused.
type Engine struct {
	catalog      *catalog.Catalog
	replacements []replacement
	names        []string
	strict       bool
	suggestions  int
	logger       Logger
	verbose      bool
}

// New builds an engine for cat.
func New(cat *catalog.Catalog, options ...Option) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("expand: catalog is required")
	}

	e := &Engine{
		catalog:     cat,
		suggestions: defaultSuggestions,
		logger:      nopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	e.replacements = make([]replacement, 0, cat.Len())
	for _, group := range cat.Groups() {
		for i, name := range group.Entries {
			e.replacements = append(e.replacements, replacement{
				token: catalog.Token(name),
				value: strconv.Itoa(i + 1),
			})
		}
	}
	e.names = cat.Names()

	return e, nil
}

// Catalog returns the catalog the engine expands against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Strict reports whether unknown placeholders fail the expansion.
func (e *Engine) Strict() bool {
	return e.strict
}

// Expand returns template with every catalog placeholder replaced by its
// value. Groups are applied in catalog order and names in group order; each
// name is fully replaced before the next one is considered.
func (e *Engine) Expand(template string) (string, error) {
	if e.strict || e.verbose {
		if err := e.checkUnknown(template); err != nil {
			return "", err
		}
	}

	out := template
	for _, r := range e.replacements {
		out = strings.ReplaceAll(out, r.token, r.value)
	}
	return out, nil
}

// ExpandBytes is Expand for byte slices.
func (e *Engine) ExpandBytes(template []byte) ([]byte, error) {
	out, err := e.Expand(string(template))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// ExpandReader reads r to EOF, expands the whole template and writes the
// result to w in a single call. Nothing is written when reading or expanding
// fails.
func (e *Engine) ExpandReader(ctx context.Context, r io.Reader, w io.Writer) error {
	if ctx == nil {
		return errors.New("expand: context is required")
	}
	if r == nil || w == nil {
		return errors.New("expand: reader and writer are required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return fmt.Errorf("expand: read template: %w", err)
	}

	out, err := e.Expand(buf.String())
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("expand: write output: %w", err)
	}
	return nil
}

func (e *Engine) checkUnknown(template string) error {
	var problems []error
	for _, token := range Scan(template) {
		if e.catalog.Has(token.Name) {
			continue
		}
		if !e.strict {
			e.logger.Printf("expand: leaving unknown placeholder %s at %d:%d", token.Text(), token.Line, token.Column)
			continue
		}
		problems = append(problems, &UnknownPlaceholderError{
			Token:       token,
			Suggestions: suggest(token.Name, e.names, e.suggestions),
		})
	}
	return errors.Join(problems...)
}
