package resolve

import "github.com/goliatone/go-snowstart/pkg/options"

// Reporter receives progress notifications so a presentation layer can echo
// what the engine decided.
type Reporter interface {
	// DefaultsApplied is called with the validated defaults; contested names
	// are about to be overridden by the command line.
	DefaultsApplied(defaults options.Record, contested []string)
	// CLIApplied is called with the validated command-line options.
	CLIApplied(cli options.Record)
	// Prompting is called before the first prompt. resumed is true when some
	// options already hold values.
	Prompting(resumed bool)
}

type nopReporter struct{}

func (nopReporter) DefaultsApplied(options.Record, []string) {}
func (nopReporter) CLIApplied(options.Record)                {}
func (nopReporter) Prompting(bool)                           {}
