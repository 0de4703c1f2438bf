// Package validation checks option records against the schema registry.
// Validation is all-or-nothing: the first violation aborts and is returned.
package validation

import (
	"fmt"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// Validator checks records against a registry.
type Validator struct {
	registry *schema.Registry
}

// New constructs a Validator. A nil registry falls back to schema.Builtin.
func New(registry *schema.Registry) *Validator {
	if registry == nil {
		registry = schema.Builtin()
	}
	return &Validator{registry: registry}
}

// Validate checks option names, value types, and enumerated choices.
func (v *Validator) Validate(rec options.Record) error {
	return v.validate(rec, true)
}

// ValidateTypes checks option names and value types only. Values outside an
// option's choices are accepted.
func (v *Validator) ValidateTypes(rec options.Record) error {
	return v.validate(rec, false)
}

func (v *Validator) validate(rec options.Record, choices bool) error {
	for _, name := range rec.Keys() {
		d, err := v.registry.Get(name)
		if err != nil {
			return &OptionNameError{Name: name}
		}
		value := rec[name]
		if !d.Check(value) {
			return &OptionValueTypeError{
				Name:     name,
				Expected: d.Type,
				Actual:   describeType(value),
			}
		}
		if !choices || !d.HasChoices() {
			continue
		}
		if err := checkChoices(d, value); err != nil {
			return err
		}
	}
	return nil
}

func checkChoices(d schema.Descriptor, value any) error {
	for _, s := range stringValues(value) {
		if d.ChoiceIndex(s) < 0 {
			return &OptionChoiceError{
				Name:    d.Name,
				Value:   s,
				Allowed: d.ChoiceValues(),
			}
		}
	}
	return nil
}

func stringValues(value any) []string {
	switch typed := value.(type) {
	case string:
		return []string{typed}
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func describeType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []string, []any:
		return "list"
	case map[string]any:
		return "object"
	case int, int64, float64, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
