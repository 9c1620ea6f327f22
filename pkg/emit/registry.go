package emit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps output format names to emitters. Format names are matched
// case-insensitively and may have aliases, so "yml" and "YAML" can both
// resolve to the yaml emitter.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]Emitter
	aliases  map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		emitters: make(map[string]Emitter),
		aliases:  make(map[string]string),
	}
}

// Register adds an emitter under its Name(). A name already taken by an
// emitter or an alias is an error.
func (r *Registry) Register(emitter Emitter) error {
	if emitter == nil {
		return fmt.Errorf("emit: emitter is required")
	}
	name := normalise(emitter.Name())
	if name == "" {
		return fmt.Errorf("emit: emitter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.takenLocked(name) {
		return fmt.Errorf("emit: format %q already registered", name)
	}
	r.emitters[name] = emitter
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(emitter Emitter) {
	if err := r.Register(emitter); err != nil {
		panic(err)
	}
}

// Alias makes alias resolve to the registered format name.
func (r *Registry) Alias(alias, name string) error {
	alias, name = normalise(alias), normalise(name)
	if alias == "" || name == "" {
		return fmt.Errorf("emit: alias and format name are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emitters[name]; !ok {
		return fmt.Errorf("emit: cannot alias %q to unknown format %q", alias, name)
	}
	if r.takenLocked(alias) {
		return fmt.Errorf("emit: format %q already registered", alias)
	}
	r.aliases[alias] = name
	return nil
}

// Get resolves a format name or alias to its emitter.
func (r *Registry) Get(name string) (Emitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalise(name)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	emitter, ok := r.emitters[key]
	if !ok {
		return nil, fmt.Errorf("emit: unknown format %q (available: %s)", name, strings.Join(r.listLocked(), ", "))
	}
	return emitter, nil
}

// List returns the sorted canonical format names. Aliases are not included.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

// Has reports whether name resolves to an emitter.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

func (r *Registry) takenLocked(name string) bool {
	_, emitter := r.emitters[name]
	_, alias := r.aliases[name]
	return emitter || alias
}

func (r *Registry) listLocked() []string {
	names := make([]string, 0, len(r.emitters))
	for name := range r.emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
