package extract

import (
	"context"
	"fmt"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/specialistvlad/depgrid/internal/preset"
	"github.com/specialistvlad/depgrid/internal/specifier"
	"golang.org/x/sync/errgroup"
)

// Options carries the context a document is extracted in.
type Options struct {
	// ConfigFileDir is the directory of the configuration file the document
	// (or its enclosing document, for inline projects) was loaded from.
	ConfigFileDir string
}

// Extractor turns configuration documents into specifiers.
type Extractor struct {
	presets *preset.Resolver
}

// New creates an Extractor that merges unresolved internal presets with
// presets.
func New(presets *preset.Resolver) *Extractor {
	return &Extractor{presets: presets}
}

// Extract returns every specifier referenced by doc, in facet order. If doc
// still carries an unmerged internal preset, it is merged first. Absent or
// malformed facets contribute nothing; the only failures are those of the
// preset merge.
//
// Inline projects that lead back to a document already being extracted, or
// to one of its presets, fail with a *config.CycleError.
func (e *Extractor) Extract(ctx context.Context, doc *config.Document, opts Options) ([]specifier.Specifier, error) {
	return e.extract(ctx, doc, opts, preset.NewChain())
}

// extract continues chain c, which holds the documents of every enclosing
// configuration.
func (e *Extractor) extract(ctx context.Context, doc *config.Document, opts Options, c *preset.Chain) ([]specifier.Specifier, error) {
	if doc == nil {
		return nil, nil
	}
	logger := ctxlog.FromContext(ctx)

	merged, err := e.presets.MergeIntoChain(ctx, doc, opts.ConfigFileDir, c)
	if err != nil {
		return nil, err
	}

	facets := e.facets(c)
	results := make([][]specifier.Specifier, len(facets))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range facets {
		g.Go(func() error {
			out, err := f.extract(gctx, merged, opts)
			if err != nil {
				return fmt.Errorf("extracting %s: %w", f.name, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []specifier.Specifier
	for _, r := range results {
		out = append(out, r...)
	}

	logger.Debug("Extracted configuration dependencies.", "path", merged.Path, "count", len(out))
	return out, nil
}

// projects handles the only recursive facet: inline project documents are
// extracted with the same options and spliced in place. Every project gets its
// own fork of c, so siblings sharing a preset are not mistaken for a cycle.
func (e *Extractor) projects(ctx context.Context, doc *config.Document, opts Options, c *preset.Chain) ([]specifier.Specifier, error) {
	var out []specifier.Specifier
	for i, p := range doc.Projects {
		switch p.Kind {
		case config.ProjectPath:
			if p.Path != "" {
				out = append(out, specifier.ToDeferred(p.Path))
			}
		case config.ProjectInline:
			nested, err := e.extract(ctxlog.With(ctx, "project", i), p.Config, opts, c.Fork())
			if err != nil {
				return nil, fmt.Errorf("project %d: %w", i, err)
			}
			out = append(out, nested...)
		}
	}
	return out, nil
}
