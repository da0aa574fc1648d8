// Package cli provides the command-line interface for the investor toolkit.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mfinvestor/internal/config"
	"mfinvestor/internal/currency"
	"mfinvestor/internal/logging"
	"mfinvestor/internal/status"
	"mfinvestor/internal/store"
	"mfinvestor/internal/theme"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-10-19"
)

// App holds the application dependencies.
type App struct {
	Config     *config.Config
	Logger     zerolog.Logger
	Store      store.KeyValueStore
	Classifier *status.Classifier
	Formatter  currency.Formatter
	// ConfigErr holds the error config loading reported, if any.
	ConfigErr error
}

// NewApp wires the dependencies described by cfg. A store that fails to open
// is logged and left nil; commands that need it report the failure.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	app := &App{
		Config:     cfg,
		Logger:     logger,
		Classifier: cfg.Classifier(),
		Formatter:  currency.NewFormatter(cfg.Display.CurrencySymbol),
	}

	kv, err := store.Open(cfg.Storage)
	if err != nil {
		logger.Warn().Err(err).Str("target", cfg.Storage.Target).Msg("Failed to open store, preferences unavailable")
	} else {
		app.Store = store.WithLogging(kv, cfg.Storage.Target, logger)
		logger.Debug().Str("target", cfg.Storage.Target).Msg("Store initialized")
	}

	return app
}

// Close releases the store.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mfx",
		Short: "Mutual-fund investor toolkit",
		Long: `mfx formats INR amounts, classifies order and mandate statuses into
display badges, splits investor names, and manages client preferences.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := app.Logger
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger = logger.Level(zerolog.DebugLevel)
			}
			logger = logging.WithOperation(logger, cmd.CommandPath())
			cmd.SetContext(logging.WithLogger(contextOf(cmd), logger))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/mfinvestor)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("dark", false, "render badges with the dark palette")
	rootCmd.PersistentFlags().Bool("light", false, "render badges with the light palette")
	rootCmd.MarkFlagsMutuallyExclusive("dark", "light")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newCurrencyCmd(app))
	rootCmd.AddCommand(newStatusCmd(app))
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newThemeCmd(app))
	rootCmd.AddCommand(newStoreCmd(app))

	return rootCmd
}

// darkMode resolves the palette: explicit flags first, then the stored
// preference, then the configured default.
func (a *App) darkMode(cmd *cobra.Command) bool {
	if dark, _ := cmd.Flags().GetBool("dark"); dark {
		return true
	}
	if light, _ := cmd.Flags().GetBool("light"); light {
		return false
	}

	fallback := theme.Light
	if a.Config.IsDarkTheme() {
		fallback = theme.Dark
	}
	if a.Store == nil {
		return fallback.Dark()
	}

	ctx := contextOf(cmd)
	mode, err := theme.Load(ctx, a.Store, fallback)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().Err(err).Msg("Using default theme")
	}
	return mode.Dark()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			}
			output.Printf("mfx v%s\n", Version)
			output.Dim("Build date: %s", BuildDate)
			return nil
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			dir, _ := cmd.Flags().GetString("config")
			if dir == "" {
				dir = config.DefaultConfigDir()
			}
			if output.IsJSON() {
				return output.JSON(map[string]string{"path": dir})
			}
			output.Println(dir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			err := app.ConfigErr
			if err == nil {
				err = app.Config.Validate()
			}
			if err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("✓ Configuration is valid")
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, app *App) {
	cfg := app.Config

	output.Bold("Display")
	output.Printf("  Currency symbol: %s\n", cfg.Display.CurrencySymbol)
	output.Printf("  Default theme:   %s\n", cfg.Display.Theme)
	output.Printf("  Sample amount:   %s\n", app.Formatter.ToDisplayString(1234567.5))
	output.Println()

	output.Bold("Storage")
	output.Printf("  Target: %s\n", cfg.Storage.Target)
	if cfg.Storage.Target != config.TargetMemory {
		output.Printf("  Path:   %s\n", cfg.Storage.Path)
	}
	output.Println()

	output.Bold("Palettes")
	light, dark := app.Classifier.Palette(false), app.Classifier.Palette(true)
	output.Printf("  Light: red %s  yellow %s  green %s\n", light.Red, light.Yellow, light.Green)
	output.Printf("  Dark:  red %s  yellow %s  green %s\n", dark.Red, dark.Yellow, dark.Green)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level: %s\n", cfg.Logging.Level)
	output.Printf("  File:  %v\n", cfg.Logging.File)
}
