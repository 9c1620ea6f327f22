package emit

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
)

// TextEmitter writes an aligned GROUP NAME VALUE listing of the values the
// expander substitutes.
type TextEmitter struct{}

func (TextEmitter) Name() string        { return "text" }
func (TextEmitter) ContentType() string { return "text/plain" }

func (TextEmitter) Emit(ctx context.Context, cat *catalog.Catalog, w io.Writer, _ Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("emit: text: catalog is required")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tNAME\tVALUE")
	for _, entry := range cat.Effective() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", entry.Group, entry.Name, entry.Value)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("emit: text: %w", err)
	}
	return nil
}
