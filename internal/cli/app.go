// Package cli wires the snowstart command: flags derived from the option
// registry, runtime settings, output encoding and exit codes.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/goliatone/go-snowstart/pkg/prompt"
	"github.com/goliatone/go-snowstart/pkg/resolve"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// Exit codes returned by Execute.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 130
)

var (
	version = "dev"
	commit  = "none"
)

// Option configures an App.
type Option func(*App)

// WithStdio replaces the output streams. Resolved configuration goes to out;
// everything else goes to errOut.
func WithStdio(out, errOut io.Writer) Option {
	return func(a *App) {
		if out != nil {
			a.out = out
		}
		if errOut != nil {
			a.errOut = errOut
		}
	}
}

// WithAsker injects the prompt renderer used by the engine.
func WithAsker(asker resolve.Asker) Option {
	return func(a *App) {
		a.asker = asker
	}
}

// WithRegistry replaces the built-in option registry.
func WithRegistry(registry *schema.Registry) Option {
	return func(a *App) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// App holds the collaborators shared by the commands.
type App struct {
	out      io.Writer
	errOut   io.Writer
	asker    resolve.Asker
	registry *schema.Registry
}

// New constructs an App writing to the process streams.
func New(opts ...Option) *App {
	a := &App{
		out:      os.Stdout,
		errOut:   os.Stderr,
		registry: schema.Builtin(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Execute runs the command line and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	cmd := a.rootCommand()
	cmd.SetArgs(expandListArgs(args, a.registry))
	cmd.SetOut(a.errOut)
	cmd.SetErr(a.errOut)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		color := true
		if settings, serr := loadSettings(cmd.Flags()); serr == nil {
			color = !settings.NoColor
		}
		a.printer(color).Fatal(err)
	}
	return ExitCode(err)
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, prompt.ErrCancelled):
		return ExitCancelled
	default:
		return ExitError
	}
}

func (a *App) colorSupported() bool {
	f, ok := a.errOut.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
