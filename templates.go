package tmplenum

import (
	"io/fs"

	"github.com/goliatone/go-tmplenum/pkg/emit"
)

// EmbeddedTemplates exposes the built-in emitter templates so callers can
// reuse or extend them without importing the emit package directly.
func EmbeddedTemplates() fs.FS {
	return emit.TemplatesFS()
}
