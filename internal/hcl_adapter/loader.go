package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// DefaultCacheSize is the number of parsed documents kept in memory.
const DefaultCacheSize = 256

// manifestFile documents store their configuration under manifestKey.
const (
	manifestFile = "package.json"
	manifestKey  = "jest"
)

// Loader is the HCL/JSON implementation of the config.Loader interface.
// Parsed documents are immutable, so they are memoized and shared between
// preset chains; an entry is keyed by path and modification time.
type Loader struct {
	cache *lru.Cache[string, *config.Document]
}

// NewLoader creates a new loader caching up to cacheSize documents. A
// non-positive size selects DefaultCacheSize.
func NewLoader(cacheSize int) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *config.Document](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating document cache: %w", err)
	}
	return &Loader{cache: cache}, nil
}

// Load reads the configuration document at path. See probe for how paths
// that are not files are handled.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	file, err := probe(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(file)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", file, err)
	}

	key := fmt.Sprintf("%s@%d", file, info.ModTime().UnixNano())
	if doc, ok := l.cache.Get(key); ok {
		logger.Debug("Configuration cache hit.", "path", file)
		return doc, nil
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	doc, err := Parse(ctx, src, file)
	if err != nil {
		return nil, err
	}

	l.cache.Add(key, doc)
	logger.Debug("Configuration loaded.", "path", file, "requested", path)
	return doc, nil
}

// Parse decodes a configuration document from src. The syntax is chosen by
// the extension of filename: ".hcl" is native HCL, anything else is JSON.
// For package.json only the "jest" key is read; a manifest without it yields
// config.ErrNotFound.
func Parse(ctx context.Context, src []byte, filename string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	var file *hcl.File
	var diags hcl.Diagnostics
	if filepath.Ext(filename) == ".hcl" {
		file, diags = parser.ParseHCL(src, filename)
	} else {
		file, diags = parser.ParseJSON(src, filename)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		// A nil EvalContext keeps JSON strings literal, so "$1" and
		// "<rootDir>" survive untouched.
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", name, filename, diags)
		}
		values[name] = val
	}
	logger.Debug("Parsed configuration attributes.", "path", filename, "count", len(values))

	if filepath.Base(filename) == manifestFile {
		val, ok := values[manifestKey]
		if !ok || val.IsNull() {
			return nil, fmt.Errorf("%s has no %q key: %w", filename, manifestKey, config.ErrNotFound)
		}
		if !isMapping(val) {
			return nil, fmt.Errorf("%s: %q must be an object, got %s", filename, manifestKey, val.Type().FriendlyName())
		}
		values = attributes(val)
	}

	doc := translateDocument(ctx, values)
	doc.Path = filename
	return doc, nil
}
