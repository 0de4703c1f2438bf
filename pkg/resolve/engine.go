package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/goliatone/go-snowstart/pkg/defaults"
	"github.com/goliatone/go-snowstart/pkg/normalize"
	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/prompt"
	"github.com/goliatone/go-snowstart/pkg/renderers/tui"
	"github.com/goliatone/go-snowstart/pkg/schema"
	"github.com/goliatone/go-snowstart/pkg/validation"
	"github.com/goliatone/go-snowstart/pkg/visibility"
)

// Asker collects answers for prompt specs. Implementations must return an
// error wrapping prompt.ErrCancelled when the user aborts.
type Asker interface {
	Ask(ctx context.Context, specs []prompt.Spec) (options.Record, error)
}

// DefaultsLoader yields the defaults record and a label for where it came
// from.
type DefaultsLoader interface {
	LoadWithSource(ctx context.Context) (options.Record, string, error)
}

// Request describes one resolution.
type Request struct {
	// CLI holds options given on the command line. Always applied.
	CLI options.Record
	// ApplyDefaults copies every default into the result (the --defaults
	// flag). Otherwise defaults only seed prompts.
	ApplyDefaults bool
	// Defaults bypasses the loader when set.
	Defaults options.Record
}

// Result is the outcome of a successful resolution.
type Result struct {
	Config Config
	// Record is the normalized record Config was decoded from.
	Record     options.Record
	Provenance Provenance
}

// Engine runs the precedence merge pipeline. An Engine holds no per-session
// state and may be reused.
type Engine struct {
	registry  *schema.Registry
	validator *validation.Validator
	deriver   *prompt.Deriver
	asker     Asker
	loader    DefaultsLoader
	reporter  Reporter
	evaluator visibility.Evaluator
	logger    *slog.Logger
	sessionID func() string
}

// New constructs an Engine. Missing collaborators fall back to the built-in
// registry, the user defaults file, and the survey-backed renderer.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Engine) applyDefaults() {
	if e.registry == nil {
		e.registry = schema.Builtin()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.validator = validation.New(e.registry)
	if e.deriver == nil {
		e.deriver = prompt.NewDeriver(e.registry, prompt.WithLogger(e.logger))
	}
	if e.asker == nil {
		e.asker = tui.New(tui.WithEvaluator(e.evaluator))
	}
	if e.loader == nil {
		e.loader = defaults.New()
	}
	if e.reporter == nil {
		e.reporter = nopReporter{}
	}
	if e.sessionID == nil {
		e.sessionID = uuid.NewString
	}
}

// Resolve merges defaults, command-line options and prompt answers.
func (e *Engine) Resolve(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("resolve: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	prov := Provenance{Session: e.sessionID()}
	logger := e.logger.With(slog.String("session", prov.Session))

	defaultsRec, source, err := e.loadDefaults(ctx, req)
	if err != nil {
		return Result{}, err
	}
	prov.DefaultsSource = source
	logger.Debug("defaults loaded", slog.String("source", source), slog.Bool("apply", req.ApplyDefaults))

	record := options.Record{}
	if req.ApplyDefaults {
		if err := e.validator.Validate(defaultsRec); err != nil {
			return Result{}, &DefaultsError{Source: source, Err: err}
		}
		prov.mark(SourceDefaults, record.AddMissing(defaultsRec)...)
	} else if err := e.validator.ValidateTypes(defaultsRec); err != nil {
		logger.Warn("defaults only partially usable for prompt seeding", slog.String("source", source), slog.Any("error", err))
	}

	cli := req.CLI.Clone()
	if err := e.validator.Validate(cli); err != nil {
		return Result{}, &CLIError{Err: err}
	}
	if req.ApplyDefaults {
		prov.Contested = contested(defaultsRec, cli)
		for _, name := range defaultsRec.Keys() {
			if !slices.Contains(prov.Contested, name) {
				prov.Accepted = append(prov.Accepted, name)
			}
		}
		e.reporter.DefaultsApplied(defaultsRec.Clone(), prov.Contested)
	}
	if len(cli) > 0 {
		e.reporter.CLIApplied(cli.Clone())
	}
	record.Overlay(cli)
	prov.mark(SourceCLI, cli.Keys()...)

	rounds := &promptRounds{engine: e, logger: logger, record: record, prov: &prov}
	if remaining := e.remaining(record); len(remaining) > 0 {
		specs := e.deriver.Derive(remaining, defaultsRec)
		if err := rounds.ask(ctx, "remaining", specs); err != nil {
			return Result{}, err
		}
	}

	if license, _ := record.String(schema.License); license == schema.LicenseMIT && !record.Has(schema.Author) {
		spec, err := e.deriver.Targeted(schema.Author, defaultsRec)
		if err != nil {
			return Result{}, fmt.Errorf("resolve: %w", err)
		}
		if err := rounds.ask(ctx, "author", []prompt.Spec{spec}); err != nil {
			return Result{}, err
		}
	}

	normalized := normalize.Normalize(record)
	cfg, err := DecodeConfig(normalized)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("options resolved",
		slog.Int("defaults", len(prov.From(SourceDefaults))),
		slog.Int("cli", len(prov.From(SourceCLI))),
		slog.Int("prompt", len(prov.From(SourcePrompt))),
	)
	return Result{Config: cfg, Record: normalized, Provenance: prov}, nil
}

func (e *Engine) loadDefaults(ctx context.Context, req Request) (options.Record, string, error) {
	if req.Defaults != nil {
		return req.Defaults.Clone(), "request", nil
	}
	rec, source, err := e.loader.LoadWithSource(ctx)
	if err != nil {
		return nil, source, &DefaultsError{Source: source, Err: err}
	}
	return rec, source, nil
}

func (e *Engine) remaining(record options.Record) []string {
	var out []string
	for _, name := range e.registry.Names() {
		if !record.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// promptRounds tracks the prompt rounds of one resolution.
type promptRounds struct {
	engine    *Engine
	logger    *slog.Logger
	record    options.Record
	prov      *Provenance
	announced bool
}

// ask runs one prompt round and merges answers without replacing resolved
// options.
func (r *promptRounds) ask(ctx context.Context, stage string, specs []prompt.Spec) error {
	if len(specs) == 0 {
		return nil
	}
	e, logger, record, prov := r.engine, r.logger, r.record, r.prov
	if !r.announced {
		e.reporter.Prompting(len(record) > 0)
		r.announced = true
	}
	logger.Debug("prompting", slog.String("stage", stage), slog.Any("options", prompt.Names(specs)))
	answers, err := e.asker.Ask(ctx, specs)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			logger.Info("prompt cancelled", slog.String("stage", stage))
			return &CancelledError{Stage: stage, Err: err}
		}
		return fmt.Errorf("resolve: %s prompts: %w", stage, err)
	}
	if err := e.validator.ValidateTypes(answers); err != nil {
		return fmt.Errorf("resolve: %s prompts: %w", stage, err)
	}
	prov.mark(SourcePrompt, record.AddMissing(answers)...)
	return nil
}

func contested(defaultsRec, cli options.Record) []string {
	var out []string
	for _, name := range defaultsRec.Keys() {
		if cli.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
