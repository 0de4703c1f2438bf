package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
	"github.com/goliatone/go-snowstart/pkg/validation"
)

func TestValidateAcceptsBuiltinShapes(t *testing.T) {
	t.Parallel()

	rec := options.Record{
		schema.ProjectDir:     "app",
		schema.JSFramework:    "react",
		schema.TypeScript:     true,
		schema.CodeFormatters: []string{"eslint", "prettier"},
		schema.Sass:           false,
		schema.CSSFramework:   "none",
		schema.Bundler:        "snowpack",
		schema.Plugins:        []any{"wtr"},
		schema.License:        "apache",
		schema.Author:         "Ada",
	}
	if err := validation.New(nil).Validate(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUnknownName(t *testing.T) {
	t.Parallel()

	for _, injected := range []string{"useYarn", "skipGitInit", "Typescript"} {
		rec := options.Record{schema.Sass: true, injected: true}
		err := validation.New(nil).Validate(rec)

		var nameErr *validation.OptionNameError
		if !errors.As(err, &nameErr) {
			t.Fatalf("%s: expected OptionNameError, got %v", injected, err)
		}
		if nameErr.Name != injected {
			t.Fatalf("%s: unexpected name %q", injected, nameErr.Name)
		}
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rec  options.Record
		want validation.OptionValueTypeError
	}{
		{
			rec:  options.Record{schema.TypeScript: "yes"},
			want: validation.OptionValueTypeError{Name: schema.TypeScript, Expected: schema.TypeBoolean, Actual: "string"},
		},
		{
			rec:  options.Record{schema.Plugins: "wtr"},
			want: validation.OptionValueTypeError{Name: schema.Plugins, Expected: schema.TypeStringList, Actual: "string"},
		},
		{
			rec:  options.Record{schema.License: nil},
			want: validation.OptionValueTypeError{Name: schema.License, Expected: schema.TypeString, Actual: "null"},
		},
		{
			rec:  options.Record{schema.ProjectDir: 42},
			want: validation.OptionValueTypeError{Name: schema.ProjectDir, Expected: schema.TypeString, Actual: "number"},
		},
	}

	for _, tc := range cases {
		err := validation.New(nil).Validate(tc.rec)
		var typeErr *validation.OptionValueTypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("expected OptionValueTypeError, got %v", err)
		}
		if diff := cmp.Diff(tc.want, *typeErr); diff != "" {
			t.Fatalf("type error mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestValidateChoices(t *testing.T) {
	t.Parallel()

	v := validation.New(nil)

	err := v.Validate(options.Record{schema.License: "wtfpl"})
	var choiceErr *validation.OptionChoiceError
	if !errors.As(err, &choiceErr) {
		t.Fatalf("expected OptionChoiceError, got %v", err)
	}
	want := validation.OptionChoiceError{
		Name:    schema.License,
		Value:   "wtfpl",
		Allowed: []string{"mit", "gpl", "apache", "none"},
	}
	if diff := cmp.Diff(want, *choiceErr); diff != "" {
		t.Fatalf("choice error mismatch (-want +got):\n%s", diff)
	}

	err = v.Validate(options.Record{schema.Plugins: []string{"wtr", "rollup"}})
	if !errors.As(err, &choiceErr) || choiceErr.Value != "rollup" {
		t.Fatalf("expected list element choice error, got %v", err)
	}

	if err := v.ValidateTypes(options.Record{schema.License: "wtfpl"}); err != nil {
		t.Fatalf("ValidateTypes should tolerate stale choices, got %v", err)
	}
}

func TestValidateFreeTextIgnoresChoices(t *testing.T) {
	t.Parallel()

	rec := options.Record{schema.Author: "anything goes", schema.ProjectDir: "./x"}
	if err := validation.New(nil).Validate(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
