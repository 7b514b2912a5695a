package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/depgrid/internal/app"
	"github.com/specialistvlad/depgrid/internal/cli"
	"github.com/specialistvlad/depgrid/internal/hcl_adapter"
)

// main is the entrypoint for the depgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cmd := cli.NewRootCommand(outW, errW, newApp)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// newApp instantiates the concrete cached loader and passes it to the app.
func newApp(logW io.Writer, cfg *app.Config) (*app.App, error) {
	loader, err := hcl_adapter.NewLoader(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create configuration loader: %w", err)
	}
	return app.NewApp(logW, cfg, loader), nil
}
