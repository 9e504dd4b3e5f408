package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/porygon/internal/app"
	"github.com/specialistvlad/porygon/internal/cli"
	"github.com/specialistvlad/porygon/internal/config"
	"github.com/specialistvlad/porygon/internal/hcl"
	"github.com/specialistvlad/porygon/internal/setup"
)

// main is the entrypoint for the porygon bot.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. installers replace the core feature set when given.
func run(ctx context.Context, outW io.Writer, args []string, installers ...setup.Installer) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	var loader config.Loader = &config.EnvLoader{}
	if appConfig.ConfigPath != "" {
		loader = hcl.NewLoader()
	}

	porygon, err := newApp(outW, appConfig, loader, installers)
	if err != nil {
		return err
	}
	return porygon.Run(ctx)
}

// newApp builds the app, turning a configuration panic into an error.
// Panics raised later by Run are programmer errors and are not recovered.
func newApp(outW io.Writer, appConfig *app.Config, loader config.Loader, installers []setup.Installer) (porygon *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()
	return app.NewApp(outW, appConfig, loader, installers...), nil
}
