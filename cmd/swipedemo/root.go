package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/platform/cannoli"
	"github.com/spf13/cobra"
)

type options struct {
	configPath       string
	lang             string
	rows             int
	fadeOut          bool
	fixedBackgrounds bool
	dimBackgrounds   bool
	theme            string
	logFile          string
	logLevel         string
}

var opts options

// rootCmd runs the terminal demo when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "swipedemo",
	Short: "Swipe list rows left and right to trigger actions.",
	Long: `Swipe list rows left and right to trigger actions.

Drag a row with the mouse (or a finger, in the SDL host):
    far left     delete the message
    left         archive (declined, the row slides back)
    right        mark as read
    far right    flag

Releasing before a quarter of the row width slides the row back unless the
drag was a fast fling.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", os.Getenv(constants.ConfigEnvVar), "settings file (TOML), reloaded when it changes")
	flags.StringVar(&opts.lang, "lang", envOr(constants.LangEnvVar, "en"), "language for action messages")
	flags.IntVar(&opts.rows, "rows", 8, "number of rows in the list")
	flags.BoolVar(&opts.fadeOut, "fade-out", false, "fade rows while they are swiped")
	flags.BoolVar(&opts.fixedBackgrounds, "fixed-backgrounds", false, "keep backgrounds in place and move only the row content")
	flags.BoolVar(&opts.dimBackgrounds, "dim-backgrounds", false, "dim backgrounds until the drag commits")
	flags.StringVar(&opts.theme, "theme", "default", "zone palette: default or cannoli")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// setupLogging sends logs to the log file, or discards them. The demo hosts
// own the screen, so nothing is logged to stdout.
func setupLogging(o options) (func(), error) {
	out := io.Discard
	closer := func() {}

	if o.logFile != "" {
		if err := os.MkdirAll(filepath.Dir(o.logFile), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		out = f
		closer = func() { f.Close() }
	}

	swipeaction.SetLogOutput(out)
	swipeaction.Init(swipeaction.Options{LogLevel: o.logLevel})
	return closer, nil
}

// buildConfig loads the settings file (watching it for changes until ctx is
// done) and applies flags that were set explicitly on top.
func buildConfig(ctx context.Context, cmd *cobra.Command, o options, onErr func(error)) (*swipeaction.GeometryConfig, error) {
	cfg := swipeaction.NewGeometryConfig()

	if o.configPath != "" {
		if err := swipeaction.WatchSettingsFile(ctx, o.configPath, cfg, onErr); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fade-out") || o.configPath == "" {
		cfg.SetFadeOut(o.fadeOut)
	}
	if flags.Changed("fixed-backgrounds") || o.configPath == "" {
		cfg.SetFixedBackgrounds(o.fixedBackgrounds)
	}
	if flags.Changed("dim-backgrounds") || o.configPath == "" {
		cfg.SetDimBackgrounds(o.dimBackgrounds)
	}

	return cfg, nil
}

func applyTheme(name string) error {
	switch name {
	case "", "default":
		swipeaction.SetTheme(swipeaction.DefaultTheme())
	case "cannoli":
		swipeaction.SetTheme(cannoli.InitCannoliTheme())
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}
