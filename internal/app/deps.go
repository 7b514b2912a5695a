package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/specialistvlad/depgrid/internal/fsutil"
	"github.com/specialistvlad/depgrid/internal/plugin"
	"github.com/specialistvlad/depgrid/internal/specifier"
)

// Report lists what a single configuration depends on.
type Report struct {
	ConfigPath   string                `json:"configPath"`
	Dependencies []specifier.Specifier `json:"dependencies"`
	Entries      []specifier.Specifier `json:"entries"`
}

// Dependencies resolves the configuration at path, or the first jest
// configuration found in path when it is a directory, and reports the
// modules it references and its test entry patterns.
func (a *App) Dependencies(ctx context.Context, path string) (*Report, error) {
	ctx = a.withLogger(ctx)

	configPath, err := a.findConfig(ctx, path)
	if err != nil {
		return nil, err
	}
	ctx = ctxlog.With(ctx, "config", configPath)
	ctxlog.FromContext(ctx).Debug("Resolving configuration.")

	doc, err := a.presets.Resolve(ctx, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", configPath, err)
	}

	dir := filepath.Dir(configPath)
	if doc.Path != "" {
		dir = filepath.Dir(doc.Path)
	}

	deps, err := a.plugin.ResolveConfig(ctx, doc, dir)
	if err != nil {
		return nil, err
	}
	entries, err := a.plugin.ResolveEntryPaths(ctx, doc, dir)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Configuration resolved.", "path", configPath, "dependencies", len(deps), "entries", len(entries))
	return &Report{ConfigPath: configPath, Dependencies: deps, Entries: entries}, nil
}

// findConfig returns path itself, or the first configuration file found in
// it when path is a directory.
func (a *App) findConfig(ctx context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if !fsutil.IsDir(abs) {
		return abs, nil
	}

	found := fsutil.FindAll(abs, plugin.ConfigFiles...)
	if len(found) == 0 {
		return "", fmt.Errorf("no %s configuration in %s: %w", plugin.Title, abs, config.ErrNotFound)
	}
	if len(found) > 1 {
		ctxlog.FromContext(ctx).Debug("Several configuration files found, using the first.", "using", found[0], "ignored", found[1:])
	}
	return found[0], nil
}
