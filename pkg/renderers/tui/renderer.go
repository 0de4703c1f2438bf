// Package tui asks option prompts on the terminal through a swappable
// PromptDriver. The default driver is backed by survey.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/prompt"
	"github.com/goliatone/go-snowstart/pkg/schema"
	"github.com/goliatone/go-snowstart/pkg/visibility"
	"github.com/goliatone/go-snowstart/pkg/visibility/expr"
)

// Renderer collects answers for prompt specs in order.
type Renderer struct {
	driver    PromptDriver
	evaluator visibility.Evaluator
	extras    map[string]any
	pageSize  int
}

// DefaultPageSize is the number of menu rows shown when no page size is set.
const DefaultPageSize = 10

// New constructs a TUI renderer with defaults (survey driver, expr evaluator).
func New(opts ...Option) *Renderer {
	r := &Renderer{
		driver:    newSurveyDriver(),
		evaluator: expr.New(),
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Ask prompts every spec in order and returns the answers keyed by option
// name. Specs carrying a condition are skipped when the condition does not
// hold against the answers collected so far in this call. Cancellation
// aborts the whole round; no partial answers are returned.
func (r *Renderer) Ask(ctx context.Context, specs []prompt.Spec) (options.Record, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	answers := options.Record{}
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if spec.Condition != "" {
			visible, err := r.evaluator.Eval(spec.Name, spec.Condition, visibility.Context{
				Values: answers,
				Extras: r.extras,
			})
			if err != nil {
				return nil, fmt.Errorf("tui: %w", err)
			}
			if !visible {
				continue
			}
		}

		value, err := r.promptSpec(ctx, spec)
		if err != nil {
			return nil, err
		}
		answers[spec.Name] = value
	}
	return answers, nil
}

func (r *Renderer) promptSpec(ctx context.Context, spec prompt.Spec) (any, error) {
	switch spec.Kind {
	case schema.PromptToggle:
		return r.promptToggle(ctx, spec)
	case schema.PromptSelect:
		return r.promptSelect(ctx, spec)
	case schema.PromptMultiSelect:
		return r.promptMultiSelect(ctx, spec)
	default:
		return r.promptText(ctx, spec)
	}
}

func (r *Renderer) promptText(ctx context.Context, spec prompt.Spec) (string, error) {
	defaultVal, _ := spec.Initial.(string)
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: spec.Message,
			Default: defaultVal,
		})
		if err != nil {
			return "", err
		}
		if spec.Validate != nil {
			if err := spec.Validate(response); err != nil {
				_ = r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", spec.Name, err))
				continue
			}
		}
		return response, nil
	}
}

func (r *Renderer) promptToggle(ctx context.Context, spec prompt.Spec) (bool, error) {
	defaultVal, _ := spec.Initial.(bool)
	return r.driver.Confirm(ctx, ConfirmConfig{
		Message: spec.Message,
		Default: defaultVal,
	})
}

func (r *Renderer) promptSelect(ctx context.Context, spec prompt.Spec) (string, error) {
	if len(spec.Choices) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoChoices, spec.Name)
	}
	titles := choiceTitles(spec.Choices)
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      spec.Message,
			Options:      titles,
			DefaultIndex: spec.InitialIndex,
			PageSize:     r.pageSize,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(spec.Choices) {
			_ = r.driver.Info(ctx, fmt.Sprintf("Invalid %s: pick one of the listed options", spec.Name))
			continue
		}
		return spec.Choices[idx].Value, nil
	}
}

func (r *Renderer) promptMultiSelect(ctx context.Context, spec prompt.Spec) ([]string, error) {
	var defaults []int
	for i, c := range spec.Choices {
		if c.Selected {
			defaults = append(defaults, i)
		}
	}
	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:      spec.Message,
		Options:      choiceTitles(spec.Choices),
		DefaultIndex: -1,
		Defaults:     defaults,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(spec.Choices) {
			values = append(values, spec.Choices[idx].Value)
		}
	}
	return values, nil
}

func choiceTitles(choices []prompt.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Title
		if out[i] == "" {
			out[i] = c.Value
		}
	}
	return out
}
