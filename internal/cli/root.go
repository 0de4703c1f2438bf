package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-snowstart/internal/display"
	"github.com/goliatone/go-snowstart/pkg/defaults"
	"github.com/goliatone/go-snowstart/pkg/renderers/tui"
	"github.com/goliatone/go-snowstart/pkg/resolve"
	"github.com/goliatone/go-snowstart/pkg/schema"
)

func (a *App) rootCommand() *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:           "snowstart [project-directory] [options]",
		Short:         "Start a new custom Snowpack app.",
		Long:          "Resolves the options of a new Snowpack app from flags, saved defaults and prompts, then prints the configuration.",
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().BoolVarP(&useDefaults, "defaults", "d", false, "Use default settings")
	of := registerOptionFlags(cmd.Flags(), a.registry)
	registerSettingsFlags(cmd.PersistentFlags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(a.errOut, settings.LogLevel)
		if err != nil {
			return err
		}
		provider, err := a.provider(settings)
		if err != nil {
			return err
		}

		cli, err := of.record()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cli[schema.ProjectDir] = args[0]
		}

		engineOpts := []resolve.Option{
			resolve.WithRegistry(a.registry),
			resolve.WithDefaultsLoader(provider),
			resolve.WithReporter(a.printer(!settings.NoColor)),
			resolve.WithLogger(logger),
		}
		asker := a.asker
		if asker == nil {
			asker = tui.New(tui.WithPageSize(settings.PageSize))
		}
		engineOpts = append(engineOpts, resolve.WithAsker(asker))
		res, err := resolve.New(engineOpts...).Resolve(cmd.Context(), resolve.Request{
			CLI:           cli,
			ApplyDefaults: useDefaults,
		})
		if err != nil {
			return err
		}
		logger.Info("configuration resolved",
			slog.String("session", res.Provenance.Session),
			slog.String("defaults", res.Provenance.DefaultsSource),
		)
		return writeOutput(a.out, settings.Output, res.Config)
	}

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		if c != cmd {
			return
		}
		a.printDefaultSettings(c)
	})

	cmd.AddCommand(a.schemaCommand())
	return cmd
}

func (a *App) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the defaults file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			raw, err := json.Marshal(a.registry.JSONSchema())
			if err != nil {
				return fmt.Errorf("cli: encode schema: %w", err)
			}
			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("cli: encode schema: %w", err)
			}
			return writeOutput(a.out, settings.Output, doc)
		},
	}
}

// printDefaultSettings appends the current defaults to --help output.
func (a *App) printDefaultSettings(cmd *cobra.Command) {
	settings, err := loadSettings(cmd.Flags())
	if err != nil {
		settings = Settings{}
	}
	printer := a.printer(!settings.NoColor)
	provider, err := a.provider(settings)
	if err != nil {
		printer.Fatal(err)
		return
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rec, source, err := provider.LoadWithSource(ctx)
	if err != nil {
		printer.Fatal(err)
		return
	}
	printer.DefaultSettings(rec, source)
}

func (a *App) provider(settings Settings) (*defaults.Provider, error) {
	if settings.DefaultsFile == "" {
		return defaults.New(), nil
	}
	if _, err := os.Stat(settings.DefaultsFile); err != nil {
		return nil, fmt.Errorf("cli: defaults file: %w", err)
	}
	return defaults.New(defaults.WithPaths(settings.DefaultsFile)), nil
}

func (a *App) printer(color bool) *display.Printer {
	return display.New(a.errOut,
		display.WithRegistry(a.registry),
		display.WithColor(color && a.colorSupported()),
	)
}
