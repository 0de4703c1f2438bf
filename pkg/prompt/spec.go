// Package prompt derives the questions left to ask once CLI flags and
// defaults have been merged, seeding each one from the defaults record.
package prompt

import (
	"errors"

	"github.com/goliatone/go-snowstart/pkg/schema"
)

// ErrCancelled signals the user aborted an interactive prompt. Renderers wrap
// it; callers test with errors.Is.
var ErrCancelled = errors.New("prompt: cancelled")

// Choice is a selectable alternative with its pre-selection state.
type Choice struct {
	Title    string
	Value    string
	Selected bool
}

// Spec is one question handed to a renderer.
type Spec struct {
	Name    string
	Kind    schema.PromptKind
	Message string
	Choices []Choice

	// Initial seeds text (string) and toggle (bool) prompts. Nil means unset.
	Initial any
	// InitialIndex seeds select prompts; -1 means no initial selection.
	InitialIndex int

	// Condition, when set, is evaluated against the answers collected earlier
	// in the same round; the question is skipped when it does not hold.
	Condition string

	Validate func(string) error
}

// SelectedValues returns the values of pre-selected choices in menu order.
func (s Spec) SelectedValues() []string {
	var out []string
	for _, c := range s.Choices {
		if c.Selected {
			out = append(out, c.Value)
		}
	}
	return out
}

// Names lists the option names of specs in order.
func Names(specs []Spec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Name
	}
	return out
}
