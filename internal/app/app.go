package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/specialistvlad/depgrid/internal/plugin"
	"github.com/specialistvlad/depgrid/internal/preset"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger  *slog.Logger
	loader  config.Loader
	presets *preset.Resolver
	plugin  *plugin.Plugin
}

// NewApp is the constructor for the main application. Logs are written to
// logW with the level and format of cfg; documents are read through loader.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	presets := preset.NewResolver(loader)
	return &App{
		logger:  logger,
		loader:  loader,
		presets: presets,
		plugin:  plugin.New(presets),
	}
}

// Logger returns the logger configured for the app.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// withLogger attaches the app's logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
