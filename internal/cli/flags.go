package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-snowstart/pkg/options"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

// toggle backs a boolean option exposed as a --name / --no-name pair. Both
// flags write the same value, so the one given last wins.
type toggle struct {
	value bool
	set   bool
}

type toggleFlag struct {
	t      *toggle
	negate bool
}

func (f *toggleFlag) Set(raw string) error {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	f.t.value = b != f.negate
	f.t.set = true
	return nil
}

func (f *toggleFlag) String() string {
	if f.t == nil || !f.t.set {
		return "false"
	}
	return strconv.FormatBool(f.t.value != f.negate)
}

func (f *toggleFlag) Type() string {
	return "bool"
}

// optionFlags maps registry options onto a flag set.
type optionFlags struct {
	registry *schema.Registry
	fs       *pflag.FlagSet
	toggles  map[string]*toggle
}

func registerOptionFlags(fs *pflag.FlagSet, registry *schema.Registry) *optionFlags {
	of := &optionFlags{registry: registry, fs: fs, toggles: map[string]*toggle{}}
	for _, d := range registry.All() {
		if d.Flag.Name == "" {
			continue
		}
		usage := flagUsage(d)
		switch d.Type {
		case schema.TypeBoolean:
			t := &toggle{}
			of.toggles[d.Name] = t
			flag := fs.VarPF(&toggleFlag{t: t}, d.Flag.Name, d.Flag.Shorthand, usage)
			flag.NoOptDefVal = "true"
			if d.Flag.Negatable {
				neg := fs.VarPF(&toggleFlag{t: t, negate: true}, "no-"+d.Flag.Name, "", "Don't "+lowerFirst(usage))
				neg.NoOptDefVal = "true"
			}
		case schema.TypeStringList:
			fs.StringSliceP(d.Flag.Name, d.Flag.Shorthand, nil, usage)
		default:
			fs.StringP(d.Flag.Name, d.Flag.Shorthand, "", usage)
		}
	}
	return of
}

// record returns the options explicitly given on the command line.
func (of *optionFlags) record() (options.Record, error) {
	rec := options.Record{}
	for _, d := range of.registry.All() {
		if d.Flag.Name == "" {
			continue
		}
		switch d.Type {
		case schema.TypeBoolean:
			if t := of.toggles[d.Name]; t != nil && t.set {
				rec[d.Name] = t.value
			}
		case schema.TypeStringList:
			if !of.fs.Changed(d.Flag.Name) {
				continue
			}
			values, err := of.fs.GetStringSlice(d.Flag.Name)
			if err != nil {
				return nil, fmt.Errorf("cli: read --%s: %w", d.Flag.Name, err)
			}
			rec[d.Name] = values
		default:
			if !of.fs.Changed(d.Flag.Name) {
				continue
			}
			value, err := of.fs.GetString(d.Flag.Name)
			if err != nil {
				return nil, fmt.Errorf("cli: read --%s: %w", d.Flag.Name, err)
			}
			rec[d.Name] = value
		}
	}
	return rec, nil
}

// expandListArgs lets list flags take space separated values, as in
// `--plugins wtr postcss`. Tokens following a list flag are folded into it
// while every comma separated part is one of its choices; the first other
// token ends the list and is parsed as usual.
func expandListArgs(args []string, registry *schema.Registry) []string {
	lists := map[string]schema.Descriptor{}
	for _, d := range registry.All() {
		if d.Type != schema.TypeStringList || d.Flag.Name == "" || !d.HasChoices() {
			continue
		}
		lists["--"+d.Flag.Name] = d
		if d.Flag.Shorthand != "" {
			lists["-"+d.Flag.Shorthand] = d
		}
	}
	if len(lists) == 0 {
		return args
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, _, inline := strings.Cut(arg, "=")
		d, ok := lists[name]
		if !ok {
			out = append(out, arg)
			continue
		}
		out = append(out, arg)
		if !inline {
			if i+1 >= len(args) {
				continue
			}
			i++
			out = append(out, args[i])
		}
		for i+1 < len(args) && isChoiceList(d, args[i+1]) {
			i++
			out = append(out, name, args[i])
		}
	}
	return out
}

func isChoiceList(d schema.Descriptor, token string) bool {
	if token == "" || strings.HasPrefix(token, "-") {
		return false
	}
	for _, part := range strings.Split(token, ",") {
		if d.ChoiceIndex(strings.TrimSpace(part)) < 0 {
			return false
		}
	}
	return true
}

func flagUsage(d schema.Descriptor) string {
	if d.Flag.Usage != "" {
		return d.Flag.Usage
	}
	if !d.HasChoices() {
		return d.Message
	}
	values := strings.Join(d.ChoiceValues(), "/")
	if d.Type == schema.TypeStringList {
		return fmt.Sprintf("%s <%s...>", d.Message, values)
	}
	return fmt.Sprintf("%s <%s>", d.Message, values)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
