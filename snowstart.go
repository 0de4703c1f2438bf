// Package snowstart resolves the options of a new Snowpack app. It exposes
// the resolution engine with the built-in registry, defaults file lookup,
// and terminal prompts already wired.
package snowstart

import (
	"context"

	"github.com/goliatone/go-snowstart/pkg/defaults"
	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/resolve"
)

// Config is the resolved configuration handed to the scaffolder.
type Config = resolve.Config

// Record is a set of option values keyed by option name.
type Record = options.Record

// Request describes one resolution; alias of resolve.Request.
type Request = resolve.Request

// Result aliases resolve.Result.
type Result = resolve.Result

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(opts ...resolve.Option) *resolve.Engine {
	return resolve.New(opts...)
}

// Resolve merges cli over the defaults (when applyDefaults is set) and
// prompts for whatever is still missing. It is the simplest entry point for
// callers that only need the final configuration.
func Resolve(ctx context.Context, cli Record, applyDefaults bool, opts ...resolve.Option) (Config, error) {
	res, err := resolve.New(opts...).Resolve(ctx, resolve.Request{
		CLI:           cli,
		ApplyDefaults: applyDefaults,
	})
	if err != nil {
		return Config{}, err
	}
	return res.Config, nil
}

// WithDefaultsFile reads defaults from path instead of the per-user
// ~/.snowpackstart.* files. A missing file falls back to the built-in
// defaults.
func WithDefaultsFile(path string) resolve.Option {
	return resolve.WithDefaultsLoader(defaults.New(defaults.WithPaths(path)))
}
