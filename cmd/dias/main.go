// Command dias inspects and edits an application's durable storage from
// the terminal.
//
//	dias put saves/slot1 "level 3"
//	dias get saves/slot1
//	dias --scope config get settings
//	dias config set audio.volume 7
//	dias serve --dir ./web
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/kalambet/dias/internal/app"
	"github.com/kalambet/dias/internal/platform"
	"github.com/kalambet/dias/internal/storage"
)

var version = "dev"

// cliConfig is read from the environment first; flags given on the command
// line win.
type cliConfig struct {
	Qualifier    string `env:"DIAS_QUALIFIER"`
	Organization string `env:"DIAS_ORGANIZATION"`
	Application  string `env:"DIAS_APPLICATION"`
	Root         string `env:"DIAS_ROOT"`
	Scope        string `env:"DIAS_SCOPE" envDefault:"data"`
	LogLevel     string `env:"DIAS_LOG_LEVEL" envDefault:"warn"`
	NoColor      string `env:"NO_COLOR"`
}

var (
	cfg     cliConfig
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:           "dias",
	Short:         "Inspect and edit application storage",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("qualifier", "", "application qualifier, e.g. com (env DIAS_QUALIFIER)")
	f.String("org", "", "organization name (env DIAS_ORGANIZATION)")
	f.String("app", "", "application name (env DIAS_APPLICATION)")
	f.String("root", "", "re-root all storage directories under this path (env DIAS_ROOT)")
	f.String("scope", "data", "storage scope: data, config or cache (env DIAS_SCOPE)")
	f.String("log-level", "warn", "debug, info, warn or error (env DIAS_LOG_LEVEL)")
	f.Bool("no-color", false, "disable colored output (env NO_COLOR)")

	rootCmd.AddCommand(putCmd, getCmd, existsCmd, rmCmd, pathsCmd, configCmd, serveCmd)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command) error {
	cfg = cliConfig{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	flags := cmd.Flags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("qualifier", &cfg.Qualifier)
	override("org", &cfg.Organization)
	override("app", &cfg.Application)
	override("root", &cfg.Root)
	override("scope", &cfg.Scope)
	override("log-level", &cfg.LogLevel)

	// With no identity given at all, act on the demo's storage.
	if cfg.Qualifier == "" && cfg.Organization == "" && cfg.Application == "" {
		cfg.Qualifier = app.DefaultIdentity.Qualifier
		cfg.Organization = app.DefaultIdentity.Organization
		cfg.Application = app.DefaultIdentity.Application
	}

	noColor = cfg.NoColor != ""
	if flags.Changed("no-color") {
		noColor, _ = flags.GetBool("no-color")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func identity() platform.Identity {
	return platform.Identity{
		Qualifier:    cfg.Qualifier,
		Organization: cfg.Organization,
		Application:  cfg.Application,
	}
}

// openStorage opens the configured application's storage on the data
// scope.
func openStorage() (*storage.Storage, error) {
	opts := []storage.Option{storage.WithLogger(slog.Default())}
	if cfg.Root != "" {
		opts = append(opts, storage.WithRoot(cfg.Root))
	}
	st, err := storage.Open(identity(), opts...)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	return st, nil
}

// openScoped opens storage on the scope chosen with --scope.
func openScoped() (*storage.Storage, error) {
	name := cfg.Scope
	if name == "" {
		name = platform.ScopeData.String()
	}
	sc, err := platform.ParseScope(name)
	if err != nil {
		return nil, err
	}
	st, err := openStorage()
	if err != nil {
		return nil, err
	}
	return st.Scope(sc), nil
}
