package expand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrUnknownPlaceholder is wrapped by every UnknownPlaceholderError.
var ErrUnknownPlaceholder = errors.New("expand: unknown placeholder")

// UnknownPlaceholderError reports a token that matches no catalog entry while
// the engine runs in strict mode.
type UnknownPlaceholderError struct {
	Token       Token
	Suggestions []string
}

func (e *UnknownPlaceholderError) Error() string {
	msg := fmt.Sprintf("expand: unknown placeholder %s at %d:%d", e.Token.Text(), e.Token.Line, e.Token.Column)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

// Is matches ErrUnknownPlaceholder.
func (e *UnknownPlaceholderError) Is(target error) bool {
	return target == ErrUnknownPlaceholder
}

// UnknownPlaceholders extracts every UnknownPlaceholderError carried by err,
// including those joined together by a strict expansion.
func UnknownPlaceholders(err error) []*UnknownPlaceholderError {
	if err == nil {
		return nil
	}

	var out []*UnknownPlaceholderError
	var walk func(error)
	walk = func(err error) {
		if upe, ok := err.(*UnknownPlaceholderError); ok {
			out = append(out, upe)
			return
		}
		switch wrapped := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range wrapped.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := wrapped.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}

func suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}
	matches := fuzzy.Find(name, candidates)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Str)
	}
	return out
}
