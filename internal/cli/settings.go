package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-snowstart/pkg/renderers/tui"
)

// EnvPrefix namespaces environment overrides, e.g. SNOWSTART_OUTPUT=yaml.
const EnvPrefix = "SNOWSTART"

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

const (
	keyDefaultsFile = "defaults-file"
	keyOutput       = "output"
	keyLogLevel     = "log-level"
	keyNoColor      = "no-color"
	keyPageSize     = "page-size"
)

// Settings controls how the tool runs, as opposed to the options it resolves.
type Settings struct {
	DefaultsFile string
	Output       string
	LogLevel     string
	NoColor      bool
	PageSize     int
}

func registerSettingsFlags(fs *pflag.FlagSet) {
	fs.String(keyDefaultsFile, "", "Read default settings from this file instead of ~/.snowpackstart.*")
	fs.String(keyOutput, OutputJSON, `Format of the resolved configuration ("json" or "yaml")`)
	fs.String(keyLogLevel, "warn", `Log level ("debug", "info", "warn", "error")`)
	fs.Bool(keyNoColor, false, "Disable colored output")
	fs.Int(keyPageSize, tui.DefaultPageSize, "Number of rows shown in selection menus")
}

// loadSettings layers flags over SNOWSTART_* environment variables over
// built-in defaults.
func loadSettings(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetDefault(keyOutput, OutputJSON)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyPageSize, tui.DefaultPageSize)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{keyDefaultsFile, keyOutput, keyLogLevel, keyNoColor, keyPageSize} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return Settings{}, fmt.Errorf("cli: bind flag %s: %w", key, err)
		}
	}

	s := Settings{
		DefaultsFile: v.GetString(keyDefaultsFile),
		Output:       strings.ToLower(strings.TrimSpace(v.GetString(keyOutput))),
		LogLevel:     v.GetString(keyLogLevel),
		NoColor:      v.GetBool(keyNoColor),
		PageSize:     v.GetInt(keyPageSize),
	}
	if s.PageSize < 1 {
		return Settings{}, fmt.Errorf("cli: page size must be positive, got %d", s.PageSize)
	}
	switch s.Output {
	case OutputJSON, OutputYAML:
	case "yml":
		s.Output = OutputYAML
	default:
		return Settings{}, fmt.Errorf("cli: unsupported output format %q", s.Output)
	}
	return s, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("cli: invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
