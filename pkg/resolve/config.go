package resolve

import (
	"fmt"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// Config is the resolved configuration handed to the scaffolder. Nil
// pointers are explicit "none" selections and encode as null; Author is
// omitted when it was never resolved.
type Config struct {
	ProjectDir     string   `json:"projectDir" yaml:"projectDir"`
	JSFramework    string   `json:"jsFramework" yaml:"jsFramework"`
	TypeScript     bool     `json:"typescript" yaml:"typescript"`
	CodeFormatters []string `json:"codeFormatters" yaml:"codeFormatters"`
	Sass           bool     `json:"sass" yaml:"sass"`
	CSSFramework   *string  `json:"cssFramework" yaml:"cssFramework"`
	Bundler        *string  `json:"bundler" yaml:"bundler"`
	Plugins        []string `json:"plugins" yaml:"plugins"`
	License        *string  `json:"license" yaml:"license"`
	Author         *string  `json:"author,omitempty" yaml:"author,omitempty"`
}

// DecodeConfig converts a normalized record into Config. Missing list options
// decode as empty lists.
func DecodeConfig(rec options.Record) (Config, error) {
	var cfg Config
	fields := []struct {
		name   string
		decode func(any) error
	}{
		{schema.ProjectDir, stringInto(&cfg.ProjectDir)},
		{schema.JSFramework, stringInto(&cfg.JSFramework)},
		{schema.TypeScript, boolInto(&cfg.TypeScript)},
		{schema.CodeFormatters, listInto(&cfg.CodeFormatters)},
		{schema.Sass, boolInto(&cfg.Sass)},
		{schema.CSSFramework, nullableInto(&cfg.CSSFramework)},
		{schema.Bundler, nullableInto(&cfg.Bundler)},
		{schema.Plugins, listInto(&cfg.Plugins)},
		{schema.License, nullableInto(&cfg.License)},
		{schema.Author, nullableInto(&cfg.Author)},
	}
	for _, f := range fields {
		value, ok := rec[f.name]
		if !ok {
			continue
		}
		if err := f.decode(value); err != nil {
			return Config{}, fmt.Errorf("resolve: decode %s: %w", f.name, err)
		}
	}
	if cfg.CodeFormatters == nil {
		cfg.CodeFormatters = []string{}
	}
	if cfg.Plugins == nil {
		cfg.Plugins = []string{}
	}
	return cfg, nil
}

func stringInto(dst *string) func(any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		*dst = s
		return nil
	}
}

func nullableInto(dst **string) func(any) error {
	return func(value any) error {
		if value == nil {
			*dst = nil
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string or null, got %T", value)
		}
		*dst = &s
		return nil
	}
}

func boolInto(dst *bool) func(any) error {
	return func(value any) error {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
		*dst = b
		return nil
	}
}

func listInto(dst *[]string) func(any) error {
	return func(value any) error {
		switch list := value.(type) {
		case []string:
			*dst = append([]string{}, list...)
			return nil
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("expected list of strings, got element %T", item)
				}
				out = append(out, s)
			}
			*dst = out
			return nil
		default:
			return fmt.Errorf("expected list of strings, got %T", value)
		}
	}
}
