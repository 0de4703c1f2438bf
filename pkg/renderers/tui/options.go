package tui

import "github.com/goliatone/go-snowstart/pkg/visibility"

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithEvaluator overrides the evaluator used for conditional prompts.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(r *Renderer) {
		if evaluator != nil {
			r.evaluator = evaluator
		}
	}
}

// WithPageSize caps the number of menu rows shown at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithExtras exposes additional values to condition rules under `extras`.
func WithExtras(extras map[string]any) Option {
	return func(r *Renderer) {
		r.extras = extras
	}
}
