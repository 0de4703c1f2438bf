// Package defaults loads the defaults record, preferring a per-user override
// file over the built-in table. Loaded records are not validated here.
package defaults

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-snowstart/pkg/options"
)

// BuiltinSource is reported by LoadWithSource when no override file exists.
const BuiltinSource = "builtin"

// FileBaseName is the dotfile name looked up in the user's home directory.
const FileBaseName = ".snowpackstart"

// Option configures a Provider.
type Option func(*Provider)

// WithPaths replaces the candidate override locations. The first existing
// path wins.
func WithPaths(paths ...string) Option {
	return func(p *Provider) {
		p.paths = append([]string(nil), paths...)
	}
}

// WithBuiltin overrides the fallback record.
func WithBuiltin(rec options.Record) Option {
	return func(p *Provider) {
		if rec != nil {
			p.builtin = rec.Clone()
		}
	}
}

// Provider resolves the defaults record.
type Provider struct {
	paths   []string
	builtin options.Record
}

// New constructs a Provider looking at UserPaths unless configured otherwise.
func New(opts ...Option) *Provider {
	p := &Provider{
		paths:   UserPaths(),
		builtin: Builtin(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// UserPaths lists the well-known override files in lookup order. It returns
// nil when the home directory cannot be determined.
func UserPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil
	}
	var out []string
	for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
		out = append(out, filepath.Join(home, FileBaseName+ext))
	}
	return out
}

// Load returns the override record when an override file exists, otherwise a
// copy of the built-in record.
func (p *Provider) Load(ctx context.Context) (options.Record, error) {
	rec, _, err := p.LoadWithSource(ctx)
	return rec, err
}

// LoadWithSource behaves like Load and also reports the file that was read,
// or BuiltinSource.
func (p *Provider) LoadWithSource(ctx context.Context) (options.Record, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	path, found, err := p.locate()
	if err != nil {
		return nil, "", err
	}
	if !found {
		return p.builtin.Clone(), BuiltinSource, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, &ParseError{Path: path, Err: err}
	}
	rec, err := Parse(path, data)
	if err != nil {
		return nil, path, err
	}
	return rec, path, nil
}

func (p *Provider) locate() (string, bool, error) {
	for _, path := range p.paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", false, fmt.Errorf("defaults: stat %s: %w", path, err)
		}
		if info.IsDir() {
			return "", false, &ParseError{Path: path, Err: errors.New("is a directory")}
		}
		return path, true, nil
	}
	return "", false, nil
}
