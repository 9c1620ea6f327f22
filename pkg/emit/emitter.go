package emit

import (
	"context"
	"io"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
)

const (
	defaultPackage = "tmplenum"
	defaultGuard   = "TMPLENUM_H"
)

// Emitter writes a representation of a catalog.
type Emitter interface {
	Name() string
	ContentType() string
	Emit(ctx context.Context, cat *catalog.Catalog, w io.Writer, options Options) error
}

// Options carry per-call settings. Emitters ignore fields they do not use.
type Options struct {
	// Package names the Go package of generated constants.
	Package string
	// Guard is the include guard macro of generated C headers.
	Guard string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = defaultPackage
	}
	if o.Guard == "" {
		o.Guard = defaultGuard
	}
	return o
}
