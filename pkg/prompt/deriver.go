package prompt

import (
	"io"
	"log/slog"
	"slices"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// Option configures a Deriver.
type Option func(*Deriver)

// WithLogger routes seeding warnings to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deriver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Deriver turns unresolved option names into prompts.
type Deriver struct {
	registry *schema.Registry
	logger   *slog.Logger
}

// NewDeriver constructs a Deriver. A nil registry falls back to schema.Builtin.
func NewDeriver(registry *schema.Registry, opts ...Option) *Deriver {
	if registry == nil {
		registry = schema.Builtin()
	}
	d := &Deriver{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Derive returns specs for every remaining name, in registry order. Each spec
// is seeded from defaults when a usable default exists.
//
// A conditional option is only derived when one of the options its rule
// depends on is also remaining, so the rule can be decided by an answer in
// the same round. Otherwise the dependency is already resolved and the
// option is left to the caller's post-merge handling.
func (d *Deriver) Derive(remaining []string, defaults options.Record) []Spec {
	var specs []Spec
	for _, desc := range d.registry.All() {
		if !slices.Contains(remaining, desc.Name) {
			continue
		}
		if desc.Conditional() && !dependsOnAny(desc, remaining) {
			d.logger.Debug("conditional prompt deferred",
				slog.String("option", desc.Name),
				slog.Any("depends_on", desc.DependsOn),
			)
			continue
		}
		spec := d.build(desc, defaults)
		spec.Condition = desc.When
		specs = append(specs, spec)
	}
	return specs
}

// Targeted builds a single unconditional spec for name, seeded from defaults.
func (d *Deriver) Targeted(name string, defaults options.Record) (Spec, error) {
	desc, err := d.registry.Get(name)
	if err != nil {
		return Spec{}, err
	}
	return d.build(desc, defaults), nil
}

func (d *Deriver) build(desc schema.Descriptor, defaults options.Record) Spec {
	spec := Spec{
		Name:         desc.Name,
		Kind:         desc.Kind,
		Message:      desc.Message,
		InitialIndex: -1,
		Validate:     desc.ValidateInput,
	}
	for _, c := range desc.Choices {
		spec.Choices = append(spec.Choices, Choice{Title: c.Title, Value: c.Value})
	}

	value, ok := defaults[desc.Name]
	if !ok {
		return spec
	}
	d.seed(&spec, desc, value)
	return spec
}

func (d *Deriver) seed(spec *Spec, desc schema.Descriptor, value any) {
	switch desc.Kind {
	case schema.PromptText:
		if s, ok := value.(string); ok {
			spec.Initial = s
			return
		}
	case schema.PromptToggle:
		if b, ok := value.(bool); ok {
			spec.Initial = b
			return
		}
	case schema.PromptSelect:
		if s, ok := value.(string); ok {
			spec.InitialIndex = desc.ChoiceIndex(s)
			if spec.InitialIndex < 0 {
				d.logger.Warn("default does not match any choice",
					slog.String("option", desc.Name),
					slog.String("value", s),
				)
			}
			return
		}
	case schema.PromptMultiSelect:
		if values, ok := stringList(value); ok {
			for i := range spec.Choices {
				spec.Choices[i].Selected = slices.Contains(values, spec.Choices[i].Value)
			}
			return
		}
	}
	d.logger.Warn("default ignored for prompt seeding",
		slog.String("option", desc.Name),
		slog.Any("value", value),
	)
}

func dependsOnAny(desc schema.Descriptor, remaining []string) bool {
	for _, dep := range desc.DependsOn {
		if slices.Contains(remaining, dep) {
			return true
		}
	}
	return false
}

func stringList(value any) ([]string, bool) {
	switch typed := value.(type) {
	case []string:
		return typed, true
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
