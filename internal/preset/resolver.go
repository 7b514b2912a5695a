package preset

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
)

// Resolver merges preset chains using a config.Loader.
type Resolver struct {
	loader config.Loader
}

// NewResolver creates a Resolver that loads documents with loader.
func NewResolver(loader config.Loader) *Resolver {
	return &Resolver{loader: loader}
}

// Chain records the documents visited on the way to the one being resolved,
// in visiting order. Callers that recurse into nested documents, such as
// inline projects, pass a Fork of their chain down so that a document
// reaching back to one of its ancestors is reported as a cycle.
type Chain struct {
	seen  mapset.Set[string]
	order []string
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{seen: mapset.NewThreadUnsafeSet[string]()}
}

// Fork returns an independent copy of c, for one branch of a recursion.
func (c *Chain) Fork() *Chain {
	return &Chain{seen: c.seen.Clone(), order: slices.Clone(c.order)}
}

// enter adds path to the chain, failing if it is already part of it.
func (c *Chain) enter(path string) error {
	c.order = append(c.order, path)
	if !c.seen.Add(path) {
		return &config.CycleError{Chain: slices.Clone(c.order)}
	}
	return nil
}

// Resolve loads the document at path and merges its internal preset chain
// into it. A document without a preset, or with an external one, is returned
// as loaded. Any document in the chain that cannot be loaded fails the whole
// resolution with a *config.LoadError.
func (r *Resolver) Resolve(ctx context.Context, path string) (*config.Document, error) {
	return r.resolve(ctx, path, NewChain())
}

// MergeInto merges the internal preset of a document that was not loaded
// through Resolve, such as an inline project, resolving the preset relative
// to dir. Documents that are already resolved are returned unchanged.
func (r *Resolver) MergeInto(ctx context.Context, doc *config.Document, dir string) (*config.Document, error) {
	return r.MergeIntoChain(ctx, doc, dir, NewChain())
}

// MergeIntoChain is MergeInto continuing chain c: the document's own path and
// every preset loaded for it are added to c, and any of them already on c
// fails with a *config.CycleError.
func (r *Resolver) MergeIntoChain(ctx context.Context, doc *config.Document, dir string, c *Chain) (*config.Document, error) {
	if doc.Path != "" {
		if err := c.enter(doc.Path); err != nil {
			return nil, err
		}
	}
	return r.mergePreset(ctx, doc, dir, c)
}

func (r *Resolver) resolve(ctx context.Context, path string, c *Chain) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}
	if err := c.enter(abs); err != nil {
		return nil, err
	}

	logger.Debug("Loading configuration document.", "path", abs, "depth", len(c.order))
	doc, err := r.loader.Load(ctx, abs)
	if err != nil {
		return nil, &config.LoadError{Path: abs, Err: err}
	}
	if doc == nil {
		return nil, &config.LoadError{Path: abs, Err: config.ErrNotFound}
	}

	// Loaders may probe a different file than the one asked for (a directory
	// holding a preset file, a path without extension); presets declared in
	// the document are relative to the file actually read.
	dir := filepath.Dir(abs)
	if doc.Path != "" {
		dir = filepath.Dir(doc.Path)
	}
	return r.mergePreset(ctx, doc, dir, c)
}

func (r *Resolver) mergePreset(ctx context.Context, doc *config.Document, dir string, c *Chain) (*config.Document, error) {
	if doc.Resolved() {
		return doc, nil
	}
	if doc.Preset == "" || !config.IsInternal(doc.Preset) {
		return doc.MarkResolved(), nil
	}

	presetPath := config.PresetPath(doc.Preset, dir)
	ctxlog.FromContext(ctx).Debug("Resolving internal preset.", "preset", doc.Preset, "path", presetPath)

	parent, err := r.resolve(ctx, presetPath, c)
	if err != nil {
		return nil, fmt.Errorf("resolving preset %q: %w", doc.Preset, err)
	}
	return config.Merge(doc, parent), nil
}
