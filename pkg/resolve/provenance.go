package resolve

import "slices"

// Source identifies where a resolved value came from.
type Source string

const (
	SourceDefaults Source = "defaults"
	SourceCLI      Source = "cli"
	SourcePrompt   Source = "prompt"
)

// Provenance records where each option value came from.
type Provenance struct {
	// Session correlates log lines of one resolution.
	Session string
	// DefaultsSource names the defaults file, or "builtin".
	DefaultsSource string
	Sources        map[string]Source
	// Contested lists defaults overridden on the command line.
	Contested []string
	// Accepted lists defaults kept as-is.
	Accepted []string
}

// SourceOf returns the source of name and whether it resolved.
func (p Provenance) SourceOf(name string) (Source, bool) {
	s, ok := p.Sources[name]
	return s, ok
}

// From returns the sorted names resolved from source.
func (p Provenance) From(source Source) []string {
	var out []string
	for name, s := range p.Sources {
		if s == source {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func (p *Provenance) mark(source Source, names ...string) {
	if p.Sources == nil {
		p.Sources = make(map[string]Source)
	}
	for _, name := range names {
		p.Sources[name] = source
	}
}
