package template

import (
	"io"
)

// TemplateRenderer is what emitters render through. Named templates are the
// file names without extension; RenderString handles one-off snippets.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	Templates() []string
}
