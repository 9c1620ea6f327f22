package expand

const defaultSuggestions = 3

// Logger receives diagnostic messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Option customises an Engine.
type Option func(*Engine)

// WithStrict makes Expand fail with UnknownPlaceholderError when the template
// contains a placeholder token the catalog does not declare.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithSuggestions caps how many catalog names are suggested for an unknown
// placeholder. Zero disables suggestions.
func WithSuggestions(limit int) Option {
	return func(e *Engine) {
		if limit < 0 {
			limit = 0
		}
		e.suggestions = limit
	}
}

// WithLogger reports unknown placeholders that are passed through to logger.
func WithLogger(logger Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			e.logger, e.verbose = nopLogger{}, false
			return
		}
		e.logger, e.verbose = logger, true
	}
}
