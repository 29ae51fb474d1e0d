package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kalambet/dias/internal/app"
	"github.com/kalambet/dias/internal/config"
	"github.com/kalambet/dias/internal/platform"
	"github.com/kalambet/dias/internal/storage"
)

// --- put ---

var putCmd = &cobra.Command{
	Use:   "put <key> [value]",
	Short: "Store a value under a key",
	Long: `Store a value under a key, replacing any previous value atomically.

The value is taken from the argument, from --file, or from stdin when
neither is given (or the value is "-").

Examples:
  dias put saves/slot1 "level 3"
  dias put --scope cache thumbnails/1 --file ./thumb.png
  echo hello | dias put greeting`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		file, _ := cmd.Flags().GetString("file")

		var payload []byte
		switch {
		case file != "" && len(args) == 2:
			return errors.New("give either a value or --file, not both")
		case file != "":
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			payload = data
		case len(args) == 2 && args[1] != "-":
			payload = []byte(args[1])
		default:
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			payload = data
		}

		st, err := openScoped()
		if err != nil {
			return err
		}
		if err := st.Save(key, payload); err != nil {
			return err
		}
		noticeDone.print(cmd.ErrOrStderr(), "Saved %s/%s (%d bytes)", st.CurrentScope(), key, len(payload))
		return nil
	},
}

func init() {
	putCmd.Flags().String("file", "", "read the value from this file")
}

// --- get ---

var getCmd = &cobra.Command{
	Use:   "get <key>...",
	Short: "Print stored values",
	Long: `Print the value stored under each key.

With a single key the raw bytes are written to stdout. With several keys they
are loaded in parallel and printed one after another under a header line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openScoped()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			payload, err := st.Load(args[0])
			if err != nil {
				return notFoundHint(err)
			}
			_, err = out.Write(payload)
			return err
		}

		payloads := make([][]byte, len(args))
		var g errgroup.Group
		for i, key := range args {
			g.Go(func() error {
				p, err := st.Load(key)
				if err != nil {
					return err
				}
				payloads[i] = p
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return notFoundHint(err)
		}
		for i, key := range args {
			fmt.Fprintln(out, colorize(ansiBold, "== "+key+" =="))
			out.Write(payloads[i])
			if !bytes.HasSuffix(payloads[i], []byte("\n")) {
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}

// --- exists ---

var existsCmd = &cobra.Command{
	Use:   "exists <key>",
	Short: "Report whether a key holds a value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openScoped()
		if err != nil {
			return err
		}
		ok, err := st.Exists(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

// --- rm ---

var rmCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Remove stored values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openScoped()
		if err != nil {
			return err
		}
		for _, key := range args {
			ok, err := st.Exists(key)
			if err != nil {
				return err
			}
			if !ok {
				noticeWarn.print(cmd.ErrOrStderr(), "%s/%s was not set", st.CurrentScope(), key)
				continue
			}
			if err := st.Remove(key); err != nil {
				return err
			}
			noticeDone.print(cmd.ErrOrStderr(), "Removed %s/%s", st.CurrentScope(), key)
		}
		return nil
	},
}

// --- paths ---

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where each scope is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		id := identity()
		field(out, "application", id.Application)
		for _, sc := range platform.Scopes {
			field(out, sc.String(), st.Location().Dir(sc))
		}
		field(out, "format", config.Format())
		return nil
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the demo's settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings, including environment overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		settings, err := app.LoadSettings(st, slog.Default())
		if err != nil {
			return err
		}
		for _, k := range app.ShowAll(settings) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", colorize(ansiBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		st, err := openStorage()
		if err != nil {
			return err
		}
		if err := app.SetKey(st, key, value); err != nil {
			return err
		}

		noticeDone.print(cmd.ErrOrStderr(), "Set %s = %s", key, value)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys and their environment variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range app.ShowAll(app.Defaults()) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", colorize(ansiBold, k.Key), colorize(ansiCyan, k.EnvVar))
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		if err := st.Scope(platform.ScopeConfig).Remove(app.SettingsKey); err != nil {
			return err
		}
		noticeDone.print(cmd.ErrOrStderr(), "Settings reset to defaults")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configResetCmd)
}

// notFoundHint turns a missing key into a friendlier message.
func notFoundHint(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w (see 'dias paths' for where values are kept)", err)
	}
	return err
}
