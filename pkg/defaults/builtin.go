package defaults

import (
	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// Builtin returns a fresh copy of the built-in defaults record. projectDir
// and author have no built-in default.
func Builtin() options.Record {
	return options.Record{
		schema.JSFramework:    schema.ChoiceNone,
		schema.TypeScript:     false,
		schema.CodeFormatters: []string{"eslint"},
		schema.Sass:           true,
		schema.CSSFramework:   schema.ChoiceNone,
		schema.Bundler:        "webpack",
		schema.Plugins:        []string{"wtr", "postcss"},
		schema.License:        schema.LicenseMIT,
	}
}
