// Package plugin describes the jest test runner to the analyzer: when it is
// enabled for a workspace, where its configuration lives, and which modules
// and entry files a configuration references.
package plugin

import (
	"context"
	"strings"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/specialistvlad/depgrid/internal/extract"
	"github.com/specialistvlad/depgrid/internal/preset"
	"github.com/specialistvlad/depgrid/internal/rootdir"
	"github.com/specialistvlad/depgrid/internal/specifier"
	"github.com/specialistvlad/depgrid/internal/workspace"
)

// Title is the display name of the plugin.
const Title = "Jest"

// presetPackagePrefix marks shared preset packages, which are enabled even
// without a dependency on the runner itself.
const presetPackagePrefix = "jest-presets"

var (
	// Enablers are the dependencies whose presence enables the plugin.
	Enablers = []string{"jest"}

	// ConfigFiles are the configuration file names looked up in a workspace
	// directory, in order of precedence.
	ConfigFiles = []string{"jest.config.json", "jest.config.hcl", "package.json"}

	// DefaultEntryPaths are the test file patterns used when a configuration
	// declares no testMatch.
	DefaultEntryPaths = []string{
		"**/__tests__/**/*.[jt]s?(x)",
		"**/?(*.)+(spec|test).[jt]s?(x)",
	}
)

// IsEnabled reports whether the workspace described by m uses the plugin.
func IsEnabled(m *workspace.Manifest) bool {
	if m == nil {
		return false
	}
	if strings.HasPrefix(m.Name, presetPackagePrefix) {
		return true
	}
	for _, name := range Enablers {
		if m.DependsOn(name) {
			return true
		}
	}
	return false
}

// Plugin resolves configuration documents into specifiers.
type Plugin struct {
	presets   *preset.Resolver
	extractor *extract.Extractor
}

// New creates a Plugin that loads preset documents through presets.
func New(presets *preset.Resolver) *Plugin {
	return &Plugin{presets: presets, extractor: extract.New(presets)}
}

// ResolveConfig returns the modules referenced by doc, with <rootDir>
// substituted. configFileDir is the directory of the file doc came from.
func (p *Plugin) ResolveConfig(ctx context.Context, doc *config.Document, configFileDir string) ([]specifier.Specifier, error) {
	if doc == nil {
		return nil, nil
	}
	merged, err := p.presets.MergeInto(ctx, doc, configFileDir)
	if err != nil {
		return nil, err
	}

	specs, err := p.extractor.Extract(ctx, merged, extract.Options{ConfigFileDir: configFileDir})
	if err != nil {
		return nil, err
	}

	x := rootdir.New(configFileDir, merged.RootDir)
	ctxlog.FromContext(ctx).Debug("Resolved configuration.", "path", merged.Path, "root", x.Root(), "count", len(specs))
	return x.Specifiers(specs), nil
}

// ResolveEntryPaths returns the test file patterns of doc as entry
// specifiers, falling back to DefaultEntryPaths when none are declared.
func (p *Plugin) ResolveEntryPaths(ctx context.Context, doc *config.Document, configFileDir string) ([]specifier.Specifier, error) {
	if doc == nil {
		return rootdir.New(configFileDir, "").Entries(DefaultEntryPaths), nil
	}
	merged, err := p.presets.MergeInto(ctx, doc, configFileDir)
	if err != nil {
		return nil, err
	}

	patterns := merged.TestMatch
	if len(patterns) == 0 {
		patterns = DefaultEntryPaths
	}
	return rootdir.New(configFileDir, merged.RootDir).Entries(patterns), nil
}
