package emit

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
)

// YAMLEmitter writes the catalog as a document catalog.Parse accepts.
type YAMLEmitter struct{}

func (YAMLEmitter) Name() string        { return "yaml" }
func (YAMLEmitter) ContentType() string { return "application/yaml" }

func (YAMLEmitter) Emit(ctx context.Context, cat *catalog.Catalog, w io.Writer, _ Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("emit: yaml: catalog is required")
	}
	data, err := catalog.Marshal(cat)
	if err != nil {
		return fmt.Errorf("emit: yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("emit: yaml: %w", err)
	}
	return nil
}
