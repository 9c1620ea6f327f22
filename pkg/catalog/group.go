package catalog

import "strconv"

// Group is an ordered sequence of placeholder names sharing one 1-based
// numbering. Name is optional and only used for diagnostics and emitters.
type Group struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Entries []string `json:"entries" yaml:"entries"`
}

// NewGroup builds a group from its named entries.
func NewGroup(name string, entries ...string) Group {
	return Group{
		Name:    name,
		Entries: append([]string(nil), entries...),
	}
}

// WithSequence returns a copy of the group with count generated names
// (prefix0 … prefix{count-1}) appended after the existing entries. Numbering
// stays contiguous: the first generated name is worth Len()+1.
func (g Group) WithSequence(prefix string, count int) Group {
	out := Group{
		Name:    g.Name,
		Entries: make([]string, 0, len(g.Entries)+max(count, 0)),
	}
	out.Entries = append(out.Entries, g.Entries...)
	out.Entries = append(out.Entries, Sequence(prefix, count)...)
	return out
}

// Len reports the number of entries in the group.
func (g Group) Len() int {
	return len(g.Entries)
}

// Value returns the 1-based position of name inside the group.
func (g Group) Value(name string) (int, bool) {
	for i, entry := range g.Entries {
		if entry == name {
			return i + 1, true
		}
	}
	return 0, false
}

// Sequence generates count names by suffixing prefix with 0..count-1.
func Sequence(prefix string, count int) []string {
	if count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i)
	}
	return out
}

func (g Group) clone() Group {
	return Group{
		Name:    g.Name,
		Entries: append([]string(nil), g.Entries...),
	}
}

// Label names the group at position index (0-based) of a catalog: its Name,
// or "#n" when unnamed.
func (g Group) Label(index int) string {
	if g.Name != "" {
		return g.Name
	}
	return "#" + strconv.Itoa(index+1)
}
