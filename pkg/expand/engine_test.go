package expand_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
	"github.com/goliatone/go-tmplenum/pkg/expand"
	"github.com/goliatone/go-tmplenum/pkg/testsupport"
)

func newEngine(t *testing.T, options ...expand.Option) *expand.Engine {
	t.Helper()

	engine, err := expand.New(catalog.FloatInfo(), options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func mustExpand(t *testing.T, engine *expand.Engine, template string) string {
	t.Helper()

	out, err := engine.Expand(template)
	if err != nil {
		t.Fatalf("expand %q: %v", template, err)
	}
	return out
}

func TestNew_RequiresCatalog(t *testing.T) {
	if _, err := expand.New(nil); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
}

func TestExpand_Scenarios(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "formats",
			template: "type={TMPL_TYPE_BINARY32}, max={TMPL_TYPE_MAX}",
			want:     "type=2, max=8",
		},
		{
			name:     "bool and first bit",
			template: "{TMPL_BOOL_IS_NORMAL} {TMPL_INT_BITTYPE_0}",
			want:     "1 8",
		},
		{
			name:     "repeated token",
			template: "{TMPL_SET_NEXT}|{TMPL_SET_NEXT}|{TMPL_SET_NEXT}",
			want:     "13|13|13",
		},
		{
			name:     "unknown token passes through",
			template: "a {NOT_A_NAME} b {TMPL_BITTYPE_SIGN}",
			want:     "a {NOT_A_NAME} b 3",
		},
		{
			name:     "code braces untouched",
			template: "if (x) { return {TMPL_SET_ZERO}; } else {}",
			want:     "if (x) { return 1; } else {}",
		},
		{
			name:     "doubled braces keep outer pair",
			template: "{{TMPL_STRCODE_MAX}}",
			want:     "{17}",
		},
		{
			name:     "empty",
			template: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustExpand(t, engine, tt.template); got != tt.want {
				t.Fatalf("expand mismatch\nwant: %q\n got: %q", tt.want, got)
			}
		})
	}
}

func TestExpand_EveryNameRendersToItsPosition(t *testing.T) {
	engine := newEngine(t)

	for _, group := range catalog.FloatInfo().Groups() {
		for i, name := range group.Entries {
			got := mustExpand(t, engine, catalog.Token(name))
			if want := strconv.Itoa(i + 1); got != want {
				t.Fatalf("%s (group %s): want %s, got %s", name, group.Name, want, got)
			}
		}
	}
}

func TestExpand_PerBitSuffixesContinueNumbering(t *testing.T) {
	engine := newEngine(t)

	for k := 0; k < catalog.BitWidth; k++ {
		bit := mustExpand(t, engine, fmt.Sprintf("{TMPL_INT_BITTYPE_%d}", k))
		if want := strconv.Itoa(7 + k + 1); bit != want {
			t.Fatalf("TMPL_INT_BITTYPE_%d: want %s, got %s", k, want, bit)
		}
		flip := mustExpand(t, engine, fmt.Sprintf("{TMPL_SET_BIT_FLIP_%d}", k))
		if want := strconv.Itoa(20 + k + 1); flip != want {
			t.Fatalf("TMPL_SET_BIT_FLIP_%d: want %s, got %s", k, want, flip)
		}
	}
}

func TestExpand_InjectivePerGroup(t *testing.T) {
	engine := newEngine(t)

	for _, group := range catalog.FloatInfo().Groups() {
		tokens := make([]string, 0, group.Len())
		for _, name := range group.Entries {
			tokens = append(tokens, catalog.Token(name))
		}
		rendered := strings.Split(mustExpand(t, engine, strings.Join(tokens, ",")), ",")

		seen := make(map[string]struct{}, len(rendered))
		for _, value := range rendered {
			if _, dup := seen[value]; dup {
				t.Fatalf("group %s renders %s twice", group.Name, value)
			}
			seen[value] = struct{}{}
		}
	}
}

func TestExpand_IdentityWithoutPlaceholders(t *testing.T) {
	engine := newEngine(t)

	inputs := []string{
		"plain text\nwith lines\n",
		"int main() { return 0; }",
		"{lowercase} {Mixed_Case} {WITH SPACE} {} { }",
		"unterminated {TMPL_TYPE_MAX",
	}
	for _, input := range inputs {
		if got := mustExpand(t, engine, input); got != input {
			t.Fatalf("expected identity\nwant: %q\n got: %q", input, got)
		}
	}
}

func TestExpand_Idempotent(t *testing.T) {
	engine := newEngine(t)
	template := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "floatinfo.tmpl"))

	first := mustExpand(t, engine, template)
	second := mustExpand(t, engine, first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second run changed output (-first +second):\n%s", diff)
	}
}

func TestExpand_Golden(t *testing.T) {
	engine := newEngine(t)

	testsupport.ExpandFixture(t,
		filepath.Join("testdata", "floatinfo.tmpl"),
		filepath.Join("testdata", "floatinfo.golden"),
		engine.Expand,
	)
}

func TestExpand_StrictRejectsUnknownPlaceholders(t *testing.T) {
	engine := newEngine(t, expand.WithStrict(true))

	_, err := engine.Expand("ok {TMPL_TYPE_MAX}\n  {TMPL_TYP_MAX} and {NOT_A_NAME}")
	if err == nil {
		t.Fatalf("expected strict mode error")
	}
	if !errors.Is(err, expand.ErrUnknownPlaceholder) {
		t.Fatalf("expected ErrUnknownPlaceholder, got %v", err)
	}

	unknown := expand.UnknownPlaceholders(err)
	if len(unknown) != 2 {
		t.Fatalf("expected 2 unknown placeholders, got %d: %v", len(unknown), err)
	}

	first := unknown[0]
	if first.Token.Name != "TMPL_TYP_MAX" || first.Token.Line != 2 || first.Token.Column != 3 {
		t.Fatalf("unexpected first token %+v", first.Token)
	}
	if len(first.Suggestions) == 0 || first.Suggestions[0] != "TMPL_TYPE_MAX" {
		t.Fatalf("expected TMPL_TYPE_MAX suggestion, got %v", first.Suggestions)
	}
	if !strings.Contains(first.Error(), "did you mean TMPL_TYPE_MAX") {
		t.Fatalf("suggestion missing from message: %s", first.Error())
	}
	if unknown[1].Token.Name != "NOT_A_NAME" {
		t.Fatalf("unexpected second token %+v", unknown[1].Token)
	}
}

func TestExpand_StrictAcceptsKnownAndCodeBraces(t *testing.T) {
	engine := newEngine(t, expand.WithStrict(true))
	if !engine.Strict() {
		t.Fatalf("expected strict engine")
	}

	got := mustExpand(t, engine, "struct X { int v = {TMPL_SET_ONE}; };")
	if got != "struct X { int v = 2; };" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestExpand_StrictWithoutSuggestions(t *testing.T) {
	engine := newEngine(t, expand.WithStrict(true), expand.WithSuggestions(0))

	_, err := engine.Expand("{TMPL_TYP_MAX}")
	unknown := expand.UnknownPlaceholders(err)
	if len(unknown) != 1 {
		t.Fatalf("expected one unknown placeholder, got %v", err)
	}
	if len(unknown[0].Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", unknown[0].Suggestions)
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestExpand_LoggerSeesPassThrough(t *testing.T) {
	logger := &recordingLogger{}
	engine := newEngine(t, expand.WithLogger(logger))

	got := mustExpand(t, engine, "{NOT_A_NAME}")
	if got != "{NOT_A_NAME}" {
		t.Fatalf("unexpected output %q", got)
	}
	if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], "{NOT_A_NAME} at 1:1") {
		t.Fatalf("unexpected log lines %v", logger.lines)
	}
}

func TestExpand_LegacyCollisionFirstGroupConsumesTokens(t *testing.T) {
	cat, err := catalog.NewWithOptions(
		[]catalog.Option{catalog.WithLegacyCollisions()},
		catalog.NewGroup("a", "FIRST", "SHARED"),
		catalog.NewGroup("b", "SHARED"),
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	engine, err := expand.New(cat)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	// The first group consumes every occurrence, so the later declaration
	// never sees the token.
	if got := mustExpand(t, engine, "{SHARED}"); got != "2" {
		t.Fatalf("expected 2, got %q", got)
	}
}

func TestExpandBytes(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.ExpandBytes([]byte("{TMPL_TYPE_POSIT8}"))
	if err != nil {
		t.Fatalf("expand bytes: %v", err)
	}
	if string(out) != "4" {
		t.Fatalf("expected 4, got %q", out)
	}
}

func TestExpandReader(t *testing.T) {
	engine := newEngine(t)

	got := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return engine.ExpandReader(testsupport.Context(), strings.NewReader("n={TMPL_SET_NAR}"), w)
	})
	if got != "n=3" {
		t.Fatalf("expected n=3, got %q", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

var errStreamClosed = errors.New("stream closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errStreamClosed
}

func TestExpandReader_Failures(t *testing.T) {
	strict := newEngine(t, expand.WithStrict(true))

	var out bytes.Buffer
	if err := strict.ExpandReader(context.Background(), failingReader{}, &out); err == nil {
		t.Fatalf("expected read error")
	}
	if err := strict.ExpandReader(context.Background(), strings.NewReader("{BAD_NAME} {TMPL_SET_ONE}"), &out); err == nil {
		t.Fatalf("expected strict error")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", out.String())
	}

	err := strict.ExpandReader(context.Background(), strings.NewReader("{TMPL_SET_ONE}"), failingWriter{})
	if !errors.Is(err, errStreamClosed) {
		t.Fatalf("expected write error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := strict.ExpandReader(ctx, strings.NewReader("x"), &out); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
