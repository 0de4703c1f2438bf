package resolve_test

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-snowstart/pkg/defaults"
	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/prompt"
	"github.com/goliatone/go-snowstart/pkg/renderers/tui"
	"github.com/goliatone/go-snowstart/pkg/resolve"
	"github.com/goliatone/go-snowstart/pkg/validation"
)

// scriptDriver answers prompts by message. Select answers are choice
// indices, multiselect answers are index lists.
type scriptDriver struct {
	answers map[string]any
	asked   []string
}

func (d *scriptDriver) next(msg string) (any, error) {
	d.asked = append(d.asked, msg)
	v, ok := d.answers[msg]
	if !ok {
		return nil, errors.New("no answer scripted for " + msg)
	}
	if err, ok := v.(error); ok {
		return nil, err
	}
	return v, nil
}

func (d *scriptDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	v, err := d.next(cfg.Message)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	v, err := d.next(cfg.Message)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (d *scriptDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	v, err := d.next(cfg.Message)
	if err != nil {
		return -1, err
	}
	return v.(int), nil
}

func (d *scriptDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	v, err := d.next(cfg.Message)
	if err != nil {
		return nil, err
	}
	return v.([]int), nil
}

func (d *scriptDriver) Info(context.Context, string) error { return nil }

type countingAsker struct {
	inner  resolve.Asker
	rounds [][]string
}

func (c *countingAsker) Ask(ctx context.Context, specs []prompt.Spec) (options.Record, error) {
	c.rounds = append(c.rounds, prompt.Names(specs))
	return c.inner.Ask(ctx, specs)
}

type staticLoader struct {
	rec    options.Record
	source string
	err    error
}

func (l staticLoader) LoadWithSource(context.Context) (options.Record, string, error) {
	return l.rec.Clone(), l.source, l.err
}

type harness struct {
	engine *resolve.Engine
	driver *scriptDriver
	asker  *countingAsker
}

func newHarness(t *testing.T, answers map[string]any, rec options.Record) *harness {
	t.Helper()
	if rec == nil {
		rec = defaults.Builtin()
	}
	driver := &scriptDriver{answers: answers}
	asker := &countingAsker{inner: tui.New(tui.WithPromptDriver(driver))}
	engine := resolve.New(
		resolve.WithAsker(asker),
		resolve.WithDefaultsLoader(staticLoader{rec: rec, source: defaults.BuiltinSource}),
		resolve.WithSessionIDs(func() string { return "session-1" }),
	)
	return &harness{engine: engine, driver: driver, asker: asker}
}

func fullAnswers(t *testing.T) map[string]any {
	t.Helper()
	return map[string]any{
		"Project directory":    filepath.Join(t.TempDir(), "app"),
		"JavaScript framework": 2,
		"TypeScript":           true,
		"Code formatters":      []int{0, 1},
		"Sass":                 false,
		"CSS framework":        1,
		"Bundler":              1,
		"Other plugins":        []int{0},
		"License":              0,
		"Author":               "Ada",
	}
}

func ptr(s string) *string { return &s }

func TestResolveNonMITLicenseSkipsAuthor(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fullAnswers(t), nil)
	res, err := h.engine.Resolve(context.Background(), resolve.Request{
		CLI: options.Record{"license": "apache"},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Config.Author != nil {
		t.Fatalf("author = %q, want absent", *res.Config.Author)
	}
	if res.Record.Has("author") {
		t.Fatalf("record should not hold author")
	}
	if slices.Contains(h.driver.asked, "Author") || slices.Contains(h.driver.asked, "License") {
		t.Fatalf("unexpected prompts %v", h.driver.asked)
	}
	if diff := cmp.Diff(ptr("apache"), res.Config.License); diff != "" {
		t.Fatalf("license (-want +got):\n%s", diff)
	}
}

func TestResolveCLIMITTriggersOneAuthorPrompt(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fullAnswers(t), nil)
	res, err := h.engine.Resolve(context.Background(), resolve.Request{
		CLI: options.Record{"license": "mit"},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := [][]string{
		{"projectDir", "jsFramework", "typescript", "codeFormatters", "sass", "cssFramework", "bundler", "plugins"},
		{"author"},
	}
	if diff := cmp.Diff(want, h.asker.rounds); diff != "" {
		t.Fatalf("prompt rounds (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ptr("Ada"), res.Config.Author); diff != "" {
		t.Fatalf("author (-want +got):\n%s", diff)
	}
	if src, _ := res.Provenance.SourceOf("author"); src != resolve.SourcePrompt {
		t.Fatalf("author source = %q", src)
	}
}

func TestResolvePromptedMITAsksAuthorOnce(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fullAnswers(t), nil)
	res, err := h.engine.Resolve(context.Background(), resolve.Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(h.asker.rounds) != 1 {
		t.Fatalf("expected a single prompt round, got %v", h.asker.rounds)
	}
	count := 0
	for _, msg := range h.driver.asked {
		if msg == "Author" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("author asked %d times", count)
	}
	if diff := cmp.Diff(ptr("Ada"), res.Config.Author); diff != "" {
		t.Fatalf("author (-want +got):\n%s", diff)
	}
}

func TestResolveDefaultsWithCLIOverride(t *testing.T) {
	t.Parallel()

	answers := fullAnswers(t)
	h := newHarness(t, answers, nil)
	res, err := h.engine.Resolve(context.Background(), resolve.Request{
		CLI:           options.Record{"typescript": true},
		ApplyDefaults: true,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := resolve.Config{
		ProjectDir:     answers["Project directory"].(string),
		JSFramework:    "blank",
		TypeScript:     true,
		CodeFormatters: []string{"eslint"},
		Sass:           true,
		CSSFramework:   nil,
		Bundler:        ptr("webpack"),
		Plugins:        []string{"wtr", "postcss"},
		License:        ptr("mit"),
		Author:         ptr("Ada"),
	}
	if diff := cmp.Diff(want, res.Config); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"typescript"}, res.Provenance.Contested); diff != "" {
		t.Fatalf("contested (-want +got):\n%s", diff)
	}
	wantAccepted := []string{"bundler", "codeFormatters", "cssFramework", "jsFramework", "license", "plugins", "sass"}
	if diff := cmp.Diff(wantAccepted, res.Provenance.Accepted); diff != "" {
		t.Fatalf("accepted (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"projectDir"}, {"author"}}, h.asker.rounds); diff != "" {
		t.Fatalf("prompt rounds (-want +got):\n%s", diff)
	}
	if src, _ := res.Provenance.SourceOf("typescript"); src != resolve.SourceCLI {
		t.Fatalf("typescript source = %q", src)
	}
	if res.Provenance.Session != "session-1" {
		t.Fatalf("session = %q", res.Provenance.Session)
	}
}

func TestResolveNormalizesNone(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fullAnswers(t), nil)
	res, err := h.engine.Resolve(context.Background(), resolve.Request{
		CLI: options.Record{"jsFramework": "none", "bundler": "none", "license": "none"},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Config.JSFramework != "blank" {
		t.Fatalf("jsFramework = %q, want blank", res.Config.JSFramework)
	}
	if res.Config.Bundler != nil || res.Config.License != nil {
		t.Fatalf("expected null bundler and license, got %v %v", res.Config.Bundler, res.Config.License)
	}
	if !res.Record.Has("bundler") || res.Record["bundler"] != nil {
		t.Fatalf("record should hold explicit null bundler")
	}
}

func TestResolveCancellation(t *testing.T) {
	t.Parallel()

	answers := fullAnswers(t)
	answers["Sass"] = tui.ErrAborted
	h := newHarness(t, answers, nil)

	res, err := h.engine.Resolve(context.Background(), resolve.Request{})
	var cancelled *resolve.CancelledError
	if !errors.As(err, &cancelled) {
		t.Fatalf("expected CancelledError, got %v", err)
	}
	if !errors.Is(err, prompt.ErrCancelled) {
		t.Fatalf("expected error to wrap prompt.ErrCancelled")
	}
	if diff := cmp.Diff(resolve.Result{}, res); diff != "" {
		t.Fatalf("expected zero result (-want +got):\n%s", diff)
	}
	if slices.Contains(h.driver.asked, "CSS framework") {
		t.Fatalf("prompting continued after cancellation: %v", h.driver.asked)
	}
}

func TestResolveNeverRepromptsResolvedOptions(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]any{}, nil)
	cli := options.Record{
		"projectDir":     "app",
		"jsFramework":    "vue",
		"typescript":     false,
		"codeFormatters": []string{"prettier"},
		"sass":           false,
		"cssFramework":   "bootstrap",
		"bundler":        "snowpack",
		"plugins":        []string{},
		"license":        "gpl",
	}
	res, err := h.engine.Resolve(context.Background(), resolve.Request{CLI: cli})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(h.asker.rounds) != 0 {
		t.Fatalf("expected no prompts, got %v", h.asker.rounds)
	}
	if diff := cmp.Diff(cli.Keys(), res.Provenance.From(resolve.SourceCLI)); diff != "" {
		t.Fatalf("cli provenance (-want +got):\n%s", diff)
	}
}

func TestResolveCLIAlwaysWins(t *testing.T) {
	t.Parallel()

	cases := options.Record{
		"jsFramework":    "svelte",
		"typescript":     true,
		"codeFormatters": []string{"prettier"},
		"sass":           false,
		"bundler":        "snowpack",
		"license":        "gpl",
	}
	for name, value := range cases {
		name := name
		value := value
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, fullAnswers(t), nil)
			res, err := h.engine.Resolve(context.Background(), resolve.Request{
				CLI:           options.Record{name: value},
				ApplyDefaults: true,
			})
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if diff := cmp.Diff(value, res.Record[name]); diff != "" {
				t.Fatalf("%s (-cli +resolved):\n%s", name, diff)
			}
		})
	}
}

func TestResolveInvalidDefaultsAreFatal(t *testing.T) {
	t.Parallel()

	rec := defaults.Builtin()
	rec["bundler"] = "parcel"
	h := newHarness(t, fullAnswers(t), rec)

	_, err := h.engine.Resolve(context.Background(), resolve.Request{ApplyDefaults: true})
	var defErr *resolve.DefaultsError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefaultsError, got %v", err)
	}
	var choiceErr *validation.OptionChoiceError
	if !errors.As(err, &choiceErr) || choiceErr.Name != "bundler" {
		t.Fatalf("expected bundler choice error, got %v", err)
	}
	if len(h.asker.rounds) != 0 {
		t.Fatalf("prompted before failing: %v", h.asker.rounds)
	}
}

func TestResolveStaleDefaultOnlySeeds(t *testing.T) {
	t.Parallel()

	rec := defaults.Builtin()
	rec["bundler"] = "parcel"
	h := newHarness(t, fullAnswers(t), rec)

	res, err := h.engine.Resolve(context.Background(), resolve.Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(ptr("snowpack"), res.Config.Bundler); diff != "" {
		t.Fatalf("bundler (-want +got):\n%s", diff)
	}
}

func TestResolveInvalidCLI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cli    options.Record
		target any
	}{
		{name: "unknown name", cli: options.Record{"colour": "blue"}, target: new(*validation.OptionNameError)},
		{name: "wrong type", cli: options.Record{"sass": "yes"}, target: new(*validation.OptionValueTypeError)},
		{name: "bad choice", cli: options.Record{"license": "bsd"}, target: new(*validation.OptionChoiceError)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, fullAnswers(t), nil)
			_, err := h.engine.Resolve(context.Background(), resolve.Request{CLI: tt.cli})
			var cliErr *resolve.CLIError
			if !errors.As(err, &cliErr) {
				t.Fatalf("expected CLIError, got %v", err)
			}
			if !errors.As(err, tt.target) {
				t.Fatalf("expected %T, got %v", tt.target, err)
			}
		})
	}
}

func TestResolveLoaderFailure(t *testing.T) {
	t.Parallel()

	parseErr := &defaults.ParseError{Path: "/home/u/.snowpackstart.yaml", Err: errors.New("bad indent")}
	engine := resolve.New(
		resolve.WithAsker(&countingAsker{inner: tui.New(tui.WithPromptDriver(&scriptDriver{}))}),
		resolve.WithDefaultsLoader(staticLoader{source: parseErr.Path, err: parseErr}),
	)

	_, err := engine.Resolve(context.Background(), resolve.Request{})
	var defErr *resolve.DefaultsError
	if !errors.As(err, &defErr) {
		t.Fatalf("expected DefaultsError, got %v", err)
	}
	if defErr.Source != parseErr.Path {
		t.Fatalf("source = %q", defErr.Source)
	}
	if !errors.Is(err, parseErr) {
		t.Fatalf("expected parse error in chain")
	}
}

type recordingReporter struct {
	contested []string
	cli       options.Record
	resumed   []bool
}

func (r *recordingReporter) DefaultsApplied(_ options.Record, contested []string) {
	r.contested = contested
}
func (r *recordingReporter) CLIApplied(cli options.Record) { r.cli = cli }
func (r *recordingReporter) Prompting(resumed bool)        { r.resumed = append(r.resumed, resumed) }

func TestResolveReportsProgress(t *testing.T) {
	t.Parallel()

	reporter := &recordingReporter{}
	driver := &scriptDriver{answers: fullAnswers(t)}
	engine := resolve.New(
		resolve.WithAsker(tui.New(tui.WithPromptDriver(driver))),
		resolve.WithDefaultsLoader(staticLoader{rec: defaults.Builtin(), source: defaults.BuiltinSource}),
		resolve.WithReporter(reporter),
	)
	res, err := engine.Resolve(context.Background(), resolve.Request{
		CLI:           options.Record{"sass": false},
		ApplyDefaults: true,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"sass"}, reporter.contested); diff != "" {
		t.Fatalf("contested (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(options.Record{"sass": false}, reporter.cli); diff != "" {
		t.Fatalf("cli (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true}, reporter.resumed); diff != "" {
		t.Fatalf("prompting (-want +got):\n%s", diff)
	}
	if res.Provenance.Session == "" {
		t.Fatalf("expected a generated session id")
	}
}
