// Package normalize rewrites "none" menu selections into the forms the
// scaffolding stage expects.
package normalize

import (
	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// Blank is the jsFramework template used when no framework is selected.
const Blank = "blank"

// nullable lists options whose "none" selection means the feature is absent.
var nullable = []string{schema.CSSFramework, schema.Bundler, schema.License}

// Normalize returns a copy of record with "none" rewritten: jsFramework
// becomes Blank, and cssFramework, bundler and license become nil. Other
// values are untouched and the input is not modified. Applying Normalize to
// its own output yields the same record.
func Normalize(record options.Record) options.Record {
	out := record.Clone()
	if v, _ := out.String(schema.JSFramework); v == schema.ChoiceNone {
		out[schema.JSFramework] = Blank
	}
	for _, name := range nullable {
		if v, _ := out.String(name); v == schema.ChoiceNone {
			out[name] = nil
		}
	}
	return out
}
