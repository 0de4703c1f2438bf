// Package display prints resolution progress and errors for humans. Nothing
// here writes to stdout; the resolved configuration owns that stream.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

const (
	markAccepted  = "√"
	markContested = "×"
)

// Option configures a Printer.
type Option func(*Printer)

// WithRegistry sets the registry used for option labels and ordering.
func WithRegistry(registry *schema.Registry) Option {
	return func(p *Printer) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// WithColor toggles ANSI styling. Color is on by default and still subject to
// what the output supports.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// Printer renders section headers and option summaries. It implements
// resolve.Reporter.
type Printer struct {
	out      io.Writer
	registry *schema.Registry
	color    bool
	styles   styles
}

// New constructs a Printer writing to out.
func New(out io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:      out,
		registry: schema.Builtin(),
		color:    true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.styles = newStyles(out, p.color)
	return p
}

// DefaultsApplied lists every default with an accepted or contested marker.
func (p *Printer) DefaultsApplied(defaults options.Record, contested []string) {
	p.section("-- Default options --")
	isContested := make(map[string]bool, len(contested))
	for _, name := range contested {
		isContested[name] = true
	}
	for _, name := range p.ordered(defaults) {
		mark := p.styles.success.Render(markAccepted)
		if isContested[name] {
			mark = p.styles.failure.Render(markContested)
		}
		fmt.Fprintf(p.out, "%s %s %s\n", mark, p.styles.label.Render(p.label(name)), p.styles.value.Render(FormatValue(defaults[name])))
	}
}

// CLIApplied lists the options given on the command line.
func (p *Printer) CLIApplied(cli options.Record) {
	p.section("-- CLI options --")
	for _, name := range p.ordered(cli) {
		fmt.Fprintf(p.out, "%s %s %s\n",
			p.styles.success.Render(markAccepted),
			p.styles.label.Render(p.label(name)+":"),
			p.styles.value.Render(FormatValue(cli[name])),
		)
	}
}

// Prompting prints the header shown before interactive questions.
func (p *Printer) Prompting(resumed bool) {
	if resumed {
		p.section("-- Remaining options --")
		return
	}
	p.section("-- Options --")
}

// DefaultSettings lists the defaults record, as appended to --help.
func (p *Printer) DefaultSettings(defaults options.Record, source string) {
	title := "Default settings"
	if source != "" {
		title = fmt.Sprintf("Default settings (%s)", source)
	}
	fmt.Fprintf(p.out, "\n  %s\n", p.styles.header.Render(title))
	for _, name := range p.ordered(defaults) {
		fmt.Fprintf(p.out, "    %s %s\n", p.styles.label.Render(name), FormatValue(defaults[name]))
	}
	fmt.Fprintln(p.out)
}

func (p *Printer) section(title string) {
	fmt.Fprintf(p.out, "\n%s\n", p.styles.header.Render(title))
}

func (p *Printer) label(name string) string {
	d, err := p.registry.Get(name)
	if err != nil || d.Message == "" {
		return name
	}
	return d.Message
}

// ordered returns the keys of rec in registry order followed by unknown keys
// sorted by name.
func (p *Printer) ordered(rec options.Record) []string {
	var out []string
	for _, name := range p.registry.Names() {
		if rec.Has(name) {
			out = append(out, name)
		}
	}
	for _, name := range rec.Keys() {
		if !p.registry.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// FormatValue renders an option value the way it is echoed to users.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
