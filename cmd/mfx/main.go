// Command mfx is the mutual-fund investor toolkit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"mfinvestor/internal/cli"
	"mfinvestor/internal/config"
	"mfinvestor/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	dir := configDir(args)
	cfg, cfgErr := config.Load(dir)
	if cfg == nil {
		// unreadable config.toml: run on defaults, "config validate" reports it
		if dir == "" {
			dir = config.DefaultConfigDir()
		}
		cfg = config.Default(dir)
	}

	logger := logging.NewLogger(cfg.Logging)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("Configuration invalid, run 'mfx config validate'")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, logger)
	app.ConfigErr = cfgErr
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close store")
		}
	}()

	root := cli.NewRootCmd(app)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// configDir finds --config before cobra parses flags, since the app is
// built from the loaded configuration.
func configDir(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
