package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Option names known to the built-in registry.
const (
	ProjectDir     = "projectDir"
	JSFramework    = "jsFramework"
	TypeScript     = "typescript"
	CodeFormatters = "codeFormatters"
	Sass           = "sass"
	CSSFramework   = "cssFramework"
	Bundler        = "bundler"
	Plugins        = "plugins"
	License        = "license"
	Author         = "author"
)

const (
	// ChoiceNone is the "no selection" value offered by several menus.
	ChoiceNone = "none"
	// LicenseMIT is the only license that asks for an author.
	LicenseMIT = "mit"
)

var builtin = sync.OnceValue(func() *Registry {
	return MustNew(BuiltinDescriptors()...)
})

// Builtin returns the process-wide registry of snowstart options.
func Builtin() *Registry {
	return builtin()
}

// BuiltinDescriptors returns fresh copies of the built-in option table in
// display order.
func BuiltinDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:          ProjectDir,
			Type:          TypeString,
			Kind:          PromptText,
			Message:       "Project directory",
			ValidateInput: validateProjectDir,
		},
		{
			Name:    JSFramework,
			Type:    TypeString,
			Kind:    PromptSelect,
			Message: "JavaScript framework",
			Choices: []Choice{
				{Title: "None", Value: ChoiceNone},
				{Title: "React", Value: "react"},
				{Title: "Vue", Value: "vue"},
				{Title: "Svelte", Value: "svelte"},
				{Title: "Preact", Value: "preact"},
				{Title: "LitElement", Value: "lit-element"},
			},
			Flag: Flag{Name: "js-framework"},
		},
		{
			Name:    TypeScript,
			Type:    TypeBoolean,
			Kind:    PromptToggle,
			Message: "TypeScript",
			Flag:    Flag{Name: "typescript", Negatable: true, Usage: "Use TypeScript"},
		},
		{
			Name:    CodeFormatters,
			Type:    TypeStringList,
			Kind:    PromptMultiSelect,
			Message: "Code formatters",
			Choices: []Choice{
				{Title: "ESLint", Value: "eslint"},
				{Title: "Prettier", Value: "prettier"},
			},
			Flag: Flag{Name: "code-formatters"},
		},
		{
			Name:    Sass,
			Type:    TypeBoolean,
			Kind:    PromptToggle,
			Message: "Sass",
			Flag:    Flag{Name: "sass", Shorthand: "s", Negatable: true, Usage: "Use Sass"},
		},
		{
			Name:    CSSFramework,
			Type:    TypeString,
			Kind:    PromptSelect,
			Message: "CSS framework",
			Choices: []Choice{
				{Title: "None", Value: ChoiceNone},
				{Title: "Tailwind CSS", Value: "tailwindcss"},
				{Title: "Bootstrap", Value: "bootstrap"},
			},
			Flag: Flag{Name: "css-framework"},
		},
		{
			Name:    Bundler,
			Type:    TypeString,
			Kind:    PromptSelect,
			Message: "Bundler",
			Choices: []Choice{
				{Title: "Webpack", Value: "webpack"},
				{Title: "Snowpack", Value: "snowpack"},
				{Title: "None", Value: ChoiceNone},
			},
			Flag: Flag{Name: "bundler", Shorthand: "b"},
		},
		{
			Name:    Plugins,
			Type:    TypeStringList,
			Kind:    PromptMultiSelect,
			Message: "Other plugins",
			Choices: []Choice{
				{Title: "Web Test Runner", Value: "wtr"},
				{Title: "PostCSS", Value: "postcss"},
				{Title: "Plugin Run Script", Value: "prs"},
				{Title: "Plugin Build Script", Value: "pbs"},
				{Title: "Plugin Optimize", Value: "pgo"},
			},
			Flag: Flag{Name: "plugins", Shorthand: "p"},
		},
		{
			Name:    License,
			Type:    TypeString,
			Kind:    PromptSelect,
			Message: "License",
			Choices: []Choice{
				{Title: "MIT", Value: LicenseMIT},
				{Title: "GPL", Value: "gpl"},
				{Title: "Apache", Value: "apache"},
				{Title: "None", Value: ChoiceNone},
			},
			Flag: Flag{Name: "license", Shorthand: "l"},
		},
		{
			Name:      Author,
			Type:      TypeString,
			Kind:      PromptText,
			Message:   "Author",
			Flag:      Flag{Name: "author", Shorthand: "a"},
			When:      fmt.Sprintf("%s == %q", License, LicenseMIT),
			DependsOn: []string{License},
		},
	}
}

func validateProjectDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("no directory provided")
	}
	if _, err := os.Stat(dir); err == nil {
		return errors.New("project directory already exists")
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
