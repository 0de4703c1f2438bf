package resolve

import (
	"log/slog"

	"github.com/goliatone/go-snowstart/pkg/prompt"
	"github.com/goliatone/go-snowstart/pkg/schema"
	"github.com/goliatone/go-snowstart/pkg/visibility"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithRegistry replaces the built-in option registry.
func WithRegistry(registry *schema.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithAsker injects the prompt renderer. Defaults to the survey-backed TUI.
func WithAsker(asker Asker) Option {
	return func(e *Engine) {
		e.asker = asker
	}
}

// WithDefaultsLoader injects the source of the defaults record.
func WithDefaultsLoader(loader DefaultsLoader) Option {
	return func(e *Engine) {
		e.loader = loader
	}
}

// WithReporter registers a progress reporter.
func WithReporter(reporter Reporter) Option {
	return func(e *Engine) {
		if reporter != nil {
			e.reporter = reporter
		}
	}
}

// WithLogger sets the structured logger for the engine and its deriver.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEvaluator sets the visibility evaluator used by the default renderer.
// Ignored when WithAsker supplies a renderer.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(e *Engine) {
		e.evaluator = evaluator
	}
}

// WithDeriver replaces the prompt deriver.
func WithDeriver(deriver *prompt.Deriver) Option {
	return func(e *Engine) {
		e.deriver = deriver
	}
}

// WithSessionIDs overrides how session ids are generated.
func WithSessionIDs(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.sessionID = fn
		}
	}
}
