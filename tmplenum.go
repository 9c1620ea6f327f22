// Package tmplenum replaces {NAME} placeholders in a template with the 1-based
// position of NAME inside its enumeration group.
package tmplenum

import (
	"context"
	"io"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
	"github.com/goliatone/go-tmplenum/pkg/expand"
	"github.com/goliatone/go-tmplenum/pkg/orchestrator"
)

// Request aliases orchestrator.Request for callers using the root package.
type Request = orchestrator.Request

// Report aliases expand.Report.
type Report = expand.Report

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// DefaultCatalog returns the built-in float inspector catalog.
func DefaultCatalog() *catalog.Catalog {
	return catalog.FloatInfo()
}

// Expand expands template against the built-in catalog. Unknown placeholders
// are left untouched.
func Expand(template string) (string, error) {
	engine, err := expand.New(catalog.FloatInfo())
	if err != nil {
		return "", err
	}
	return engine.Expand(template)
}

// ExpandStream reads r to EOF and writes the expansion to w, delegating to the
// orchestrator so options such as WithStrict or WithCatalogFS apply.
func ExpandStream(ctx context.Context, r io.Reader, w io.Writer, options ...orchestrator.Option) error {
	return orchestrator.New(options...).Expand(ctx, orchestrator.Request{
		Input:  r,
		Output: w,
	})
}

// WithStrict forwards to orchestrator.WithStrict.
func WithStrict(strict bool) orchestrator.Option {
	return orchestrator.WithStrict(strict)
}
