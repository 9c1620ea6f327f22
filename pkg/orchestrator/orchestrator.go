package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
	"github.com/goliatone/go-tmplenum/pkg/emit"
	"github.com/goliatone/go-tmplenum/pkg/expand"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithCatalog replaces the built-in catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = cat
	}
}

// WithCatalogFS loads the catalog from the JSON/YAML documents in fsys. It
// takes precedence over WithCatalog.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.catalogFS = fsys
	}
}

// WithStrict fails expansion on placeholders the catalog does not declare.
func WithStrict(strict bool) Option {
	return func(o *Orchestrator) {
		o.strict = strict
	}
}

// WithRegistry injects an emitter registry.
func WithRegistry(registry *emit.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultFormat overrides the emitter used when Emit is called without a
// format.
func WithDefaultFormat(name string) Option {
	return func(o *Orchestrator) {
		o.defaultFormat = name
	}
}

// WithLogger receives notices about unknown placeholders left in place.
func WithLogger(logger expand.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates catalog loading, expansion and table emission. It
// applies defaults (built-in catalog, built-in emitters) while remaining open
// to dependency injection.
type Orchestrator struct {
	catalog         *catalog.Catalog
	catalogFS       fs.FS
	registry        *emit.Registry
	defaultFormat   string
	strict          bool
	logger          expand.Logger
	engine          *expand.Engine
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Construction
// errors such as an invalid catalog document surface on first use.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultFormat: emit.DefaultFormat,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one expansion.
type Request struct {
	// Input supplies the template. It is read to EOF before anything is
	// written.
	Input io.Reader

	// Output receives the expanded template in a single write.
	Output io.Writer
}

// Expand reads the request template, replaces every catalog placeholder and
// writes the result.
func (o *Orchestrator) Expand(ctx context.Context, req Request) error {
	if err := o.ready(ctx); err != nil {
		return err
	}
	if req.Input == nil {
		return errors.New("orchestrator: input is required")
	}
	if req.Output == nil {
		return errors.New("orchestrator: output is required")
	}
	return o.engine.ExpandReader(ctx, req.Input, req.Output)
}

// Report reads a template and summarises its placeholder usage without
// expanding it.
func (o *Orchestrator) Report(ctx context.Context, input io.Reader) (expand.Report, error) {
	if err := o.ready(ctx); err != nil {
		return expand.Report{}, err
	}
	if input == nil {
		return expand.Report{}, errors.New("orchestrator: input is required")
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(input); err != nil {
		return expand.Report{}, fmt.Errorf("orchestrator: read template: %w", err)
	}
	return o.engine.Report(buf.String()), nil
}

// Emit writes the catalog table with the named emitter. An empty format uses
// the configured default.
func (o *Orchestrator) Emit(ctx context.Context, format string, w io.Writer, options emit.Options) error {
	if err := o.ready(ctx); err != nil {
		return err
	}
	if w == nil {
		return errors.New("orchestrator: output is required")
	}

	emitter, err := o.emitterFor(format)
	if err != nil {
		return err
	}

	// w receives the whole table or nothing.
	var buf bytes.Buffer
	if err := emitter.Emit(ctx, o.catalog, &buf, options); err != nil {
		return fmt.Errorf("orchestrator: emit %s: %w", emitter.Name(), err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("orchestrator: write output: %w", err)
	}
	return nil
}

// Catalog returns the resolved catalog.
func (o *Orchestrator) Catalog() (*catalog.Catalog, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}
	return o.catalog, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := o.Catalog()
	return err
}

func (o *Orchestrator) emitterFor(name string) (emit.Emitter, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: emitter registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultFormat
	}

	if target != "" {
		emitter, err := o.registry.Get(target)
		if err == nil {
			return emitter, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: emitter %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no emitters registered")
	}

	emitter, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: emitter %q: %w", names[0], err)
	}
	return emitter, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	switch {
	case o.catalogFS != nil:
		cat, err := catalog.LoadFS(o.catalogFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load catalog: %w", err)
			return
		}
		o.catalog = cat
	case o.catalog == nil:
		o.catalog = catalog.FloatInfo()
	}

	if o.registry == nil {
		registry, err := emit.NewDefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default emitters: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultFormat == "" {
		o.defaultFormat = emit.DefaultFormat
	}

	engine, err := expand.New(o.catalog,
		expand.WithStrict(o.strict),
		expand.WithLogger(o.logger),
	)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: engine: %w", err)
		return
	}
	o.engine = engine
}
