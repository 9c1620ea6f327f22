package catalog

import (
	"errors"
	"fmt"
)

// Entry is a resolved placeholder assignment.
type Entry struct {
	Group string `json:"group" yaml:"group"`
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// Token returns the placeholder token for the entry, e.g. "{TMPL_TYPE_MAX}".
func (e Entry) Token() string {
	return Token(e.Name)
}

// Token wraps name in the placeholder delimiters.
func Token(name string) string {
	return "{" + name + "}"
}

// Option customises catalog construction.
type Option func(*options)

type options struct {
	legacyCollisions bool
}

// WithLegacyCollisions allows the same name in more than one group. Whole-text
// replacement lets the first declaring group consume every occurrence, so
// Lookup resolves to that group. Only use it when output must match the
// legacy tool byte for byte.
func WithLegacyCollisions() Option {
	return func(o *options) {
		o.legacyCollisions = true
	}
}

// Catalog is an immutable, ordered set of enumeration groups.
type Catalog struct {
	groups           []Group
	index            map[string]Entry
	size             int
	legacyCollisions bool
}

// New validates groups and returns a catalog preserving their order.
func New(groups ...Group) (*Catalog, error) {
	return NewWithOptions(nil, groups...)
}

// NewWithOptions is New with construction options.
func NewWithOptions(opts []Option, groups ...Group) (*Catalog, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	c := &Catalog{
		groups:           make([]Group, 0, len(groups)),
		index:            make(map[string]Entry),
		legacyCollisions: cfg.legacyCollisions,
	}

	var (
		problems   []error
		owner      = make(map[string]string)
		groupNames = make(map[string]struct{})
	)
	for gi, group := range groups {
		label := group.Label(gi)
		if group.Name != "" {
			if _, seen := groupNames[group.Name]; seen {
				problems = append(problems, &Error{Code: CodeGroupName, Group: group.Name})
			}
			groupNames[group.Name] = struct{}{}
		}
		if len(group.Entries) == 0 {
			problems = append(problems, &Error{Code: CodeEmptyGroup, Group: label})
			continue
		}

		local := make(map[string]struct{}, len(group.Entries))
		for i, name := range group.Entries {
			if !ValidName(name) {
				problems = append(problems, &Error{Code: CodeInvalidName, Group: label, Name: name})
				continue
			}
			if _, dup := local[name]; dup {
				problems = append(problems, &Error{Code: CodeDuplicateName, Group: label, Name: name})
				continue
			}
			local[name] = struct{}{}

			if first, taken := owner[name]; taken {
				if !cfg.legacyCollisions {
					problems = append(problems, &Error{Code: CodeCollision, Group: label, Name: name, Other: first})
				}
				continue
			}
			owner[name] = label
			c.index[name] = Entry{Group: label, Name: name, Value: i + 1}
		}

		c.groups = append(c.groups, group.clone())
		c.size += len(group.Entries)
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return c, nil
}

// MustNew panics when the groups do not form a valid catalog. Useful for
// package-level declarations.
func MustNew(groups ...Group) *Catalog {
	c, err := New(groups...)
	if err != nil {
		panic(fmt.Errorf("catalog: must new: %w", err))
	}
	return c
}

// Groups returns a copy of the catalog groups in declaration order.
func (c *Catalog) Groups() []Group {
	if c == nil {
		return nil
	}
	out := make([]Group, len(c.groups))
	for i, group := range c.groups {
		out[i] = group.clone()
	}
	return out
}

// Entries flattens the catalog into assignments, in processing order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, c.size)
	for gi, group := range c.groups {
		label := group.Label(gi)
		for i, name := range group.Entries {
			out = append(out, Entry{Group: label, Name: name, Value: i + 1})
		}
	}
	return out
}

// Effective is Entries without the repeats a legacy catalog allows: a name
// declared by several groups is kept only where it is first declared, which
// is the value the expander writes for it.
func (c *Catalog) Effective() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.index))
	for _, entry := range c.Entries() {
		if owner, ok := c.index[entry.Name]; ok && owner == entry {
			out = append(out, entry)
		}
	}
	return out
}

// Names returns every distinct placeholder name in processing order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.index))
	seen := make(map[string]struct{}, len(c.index))
	for _, group := range c.groups {
		for _, name := range group.Entries {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Lookup resolves the value a name renders to.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	entry, ok := c.index[name]
	return entry, ok
}

// Has reports whether name is declared in any group.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Len reports the total number of entries across all groups.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// ValidName reports whether name follows the placeholder grammar: an
// uppercase ASCII letter followed by uppercase letters, digits or underscores.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
		case i > 0 && (ch >= '0' && ch <= '9' || ch == '_'):
		default:
			return false
		}
	}
	return true
}
