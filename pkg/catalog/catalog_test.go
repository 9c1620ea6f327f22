package catalog_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
)

func TestSequence(t *testing.T) {
	got := catalog.Sequence("BIT_", 3)
	want := []string{"BIT_0", "BIT_1", "BIT_2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	if got := catalog.Sequence("BIT_", 0); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
	if got := catalog.Sequence("BIT_", -4); got != nil {
		t.Fatalf("expected nil for negative count, got %v", got)
	}
}

func TestGroupWithSequence_ContinuesNumbering(t *testing.T) {
	base := catalog.NewGroup("flags", "A", "B")
	group := base.WithSequence("A_BIT_", 2)

	if base.Len() != 2 {
		t.Fatalf("WithSequence mutated the receiver: %v", base.Entries)
	}
	if group.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", group.Len())
	}

	value, ok := group.Value("A_BIT_0")
	if !ok || value != 3 {
		t.Fatalf("expected A_BIT_0 = 3, got %d (found=%v)", value, ok)
	}
	value, ok = group.Value("A_BIT_1")
	if !ok || value != 4 {
		t.Fatalf("expected A_BIT_1 = 4, got %d (found=%v)", value, ok)
	}
	if _, ok := group.Value("MISSING"); ok {
		t.Fatalf("unexpected value for missing name")
	}
}

func TestNew_EntriesFollowDeclarationOrder(t *testing.T) {
	cat, err := catalog.New(
		catalog.NewGroup("first", "ALPHA", "BETA"),
		catalog.NewGroup("second", "GAMMA"),
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	want := []catalog.Entry{
		{Group: "first", Name: "ALPHA", Value: 1},
		{Group: "first", Name: "BETA", Value: 2},
		{Group: "second", Name: "GAMMA", Value: 1},
	}
	if diff := cmp.Diff(want, cat.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if cat.Len() != 3 {
		t.Fatalf("expected len 3, got %d", cat.Len())
	}
	if diff := cmp.Diff([]string{"ALPHA", "BETA", "GAMMA"}, cat.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_UnnamedGroupsUseIndexLabels(t *testing.T) {
	cat, err := catalog.New(catalog.Group{Entries: []string{"ONLY"}})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	entry, ok := cat.Lookup("ONLY")
	if !ok {
		t.Fatalf("ONLY not found")
	}
	if entry.Group != "#1" {
		t.Fatalf("expected positional label, got %q", entry.Group)
	}
	if entry.Token() != "{ONLY}" {
		t.Fatalf("unexpected token %q", entry.Token())
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		groups []catalog.Group
		code   catalog.ErrorCode
	}{
		{
			name:   "collision across groups",
			groups: []catalog.Group{catalog.NewGroup("a", "X", "Y"), catalog.NewGroup("b", "Y")},
			code:   catalog.CodeCollision,
		},
		{
			name:   "duplicate inside group",
			groups: []catalog.Group{catalog.NewGroup("a", "X", "X")},
			code:   catalog.CodeDuplicateName,
		},
		{
			name:   "lowercase name",
			groups: []catalog.Group{catalog.NewGroup("a", "lower")},
			code:   catalog.CodeInvalidName,
		},
		{
			name:   "brace in name",
			groups: []catalog.Group{catalog.NewGroup("a", "{X}")},
			code:   catalog.CodeInvalidName,
		},
		{
			name:   "empty group",
			groups: []catalog.Group{catalog.NewGroup("a")},
			code:   catalog.CodeEmptyGroup,
		},
		{
			name:   "repeated group name",
			groups: []catalog.Group{catalog.NewGroup("a", "X"), catalog.NewGroup("a", "Y")},
			code:   catalog.CodeGroupName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := catalog.New(tt.groups...)
			if err == nil {
				t.Fatalf("expected error, got catalog with %d entries", cat.Len())
			}
			if !errors.Is(err, catalog.ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
			var catErr *catalog.Error
			if !errors.As(err, &catErr) {
				t.Fatalf("expected *catalog.Error, got %T", err)
			}
			if catErr.Code != tt.code {
				t.Fatalf("expected code %s, got %s (%v)", tt.code, catErr.Code, catErr)
			}
		})
	}
}

func TestNewWithOptions_LegacyCollisionsFirstGroupWins(t *testing.T) {
	cat, err := catalog.NewWithOptions(
		[]catalog.Option{catalog.WithLegacyCollisions()},
		catalog.NewGroup("a", "X", "SHARED"),
		catalog.NewGroup("b", "SHARED"),
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	entry, ok := cat.Lookup("SHARED")
	if !ok {
		t.Fatalf("SHARED not found")
	}
	if entry.Group != "a" || entry.Value != 2 {
		t.Fatalf("expected group a value 2, got %+v", entry)
	}
	if len(cat.Names()) != 2 {
		t.Fatalf("expected 2 distinct names, got %v", cat.Names())
	}
	if cat.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", cat.Len())
	}
}

func TestEffective_DropsShadowedEntries(t *testing.T) {
	cat, err := catalog.NewWithOptions(
		[]catalog.Option{catalog.WithLegacyCollisions()},
		catalog.NewGroup("a", "X", "SHARED"),
		catalog.NewGroup("b", "SHARED", "Y"),
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	want := []catalog.Entry{
		{Group: "a", Name: "X", Value: 1},
		{Group: "a", Name: "SHARED", Value: 2},
		{Group: "b", Name: "Y", Value: 2},
	}
	if diff := cmp.Diff(want, cat.Effective()); diff != "" {
		t.Fatalf("effective mismatch (-want +got):\n%s", diff)
	}
	if len(cat.Entries()) != 4 {
		t.Fatalf("Entries should keep every declaration, got %v", cat.Entries())
	}

	plain := catalog.MustNew(catalog.NewGroup("", "P"), catalog.NewGroup("q", "Q"))
	if diff := cmp.Diff(plain.Entries(), plain.Effective()); diff != "" {
		t.Fatalf("effective should equal entries without collisions (-want +got):\n%s", diff)
	}
	if plain.Effective()[0].Group != "#1" {
		t.Fatalf("expected unnamed group label #1, got %q", plain.Effective()[0].Group)
	}
}

func TestGroupLabel(t *testing.T) {
	if got := catalog.NewGroup("", "A").Label(2); got != "#3" {
		t.Fatalf("unnamed label = %q, want #3", got)
	}
	if got := catalog.NewGroup("bits", "A").Label(0); got != "bits" {
		t.Fatalf("named label = %q, want bits", got)
	}
}

func TestGroups_ReturnsCopies(t *testing.T) {
	cat := catalog.MustNew(catalog.NewGroup("a", "X", "Y"))

	groups := cat.Groups()
	groups[0].Entries[0] = "MUTATED"

	if _, ok := cat.Lookup("X"); !ok {
		t.Fatalf("catalog lookup changed after mutating a copy")
	}
	if cat.Groups()[0].Entries[0] != "X" {
		t.Fatalf("catalog groups changed after mutating a copy")
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	catalog.MustNew(catalog.NewGroup("a", "X"), catalog.NewGroup("b", "X"))
}

func TestValidName(t *testing.T) {
	tests := map[string]bool{
		"TMPL_TYPE_MAX":      true,
		"A":                  true,
		"TMPL_INT_BITTYPE_0": true,
		"":                   false,
		"_LEADING":           false,
		"9LIVES":             false,
		"Mixed":              false,
		"WITH SPACE":         false,
		"DASH-ED":            false,
	}
	for name, want := range tests {
		if got := catalog.ValidName(name); got != want {
			t.Errorf("ValidName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNilCatalog(t *testing.T) {
	var cat *catalog.Catalog
	if cat.Len() != 0 || cat.Groups() != nil || cat.Entries() != nil || cat.Effective() != nil || cat.Has("X") {
		t.Fatalf("nil catalog should behave as empty")
	}
}
