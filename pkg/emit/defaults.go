package emit

import (
	"fmt"

	"github.com/goliatone/go-tmplenum/pkg/emit/template/pongo"
)

// DefaultFormat is used when callers do not name an emitter.
const DefaultFormat = "text"

var defaultAliases = map[string]string{
	"golang": "go",
	"h":      "c",
	"yml":    "yaml",
	"txt":    "text",
}

// NewDefaultRegistry registers the built-in go, c, yaml and text emitters
// plus the aliases golang, h, yml and txt. The template emitters share one
// engine backed by the embedded templates; options tune that engine, for
// example pongo.WithOverrideDir.
func NewDefaultRegistry(options ...pongo.Option) (*Registry, error) {
	engine, err := pongo.New(TemplatesFS(), options...)
	if err != nil {
		return nil, fmt.Errorf("emit: template engine: %w", err)
	}

	registry := NewRegistry()
	registry.MustRegister(NewGoEmitter(engine))
	registry.MustRegister(NewCEmitter(engine))
	registry.MustRegister(YAMLEmitter{})
	registry.MustRegister(TextEmitter{})
	for alias, name := range defaultAliases {
		if err := registry.Alias(alias, name); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
