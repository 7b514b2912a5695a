package extract

import (
	"context"
	"regexp"
	"slices"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/preset"
	"github.com/specialistvlad/depgrid/internal/specifier"
)

// The browser-like DOM test environment ships as a separate package.
const (
	jsdomEnvironment = "jsdom"
	jsdomPackage     = "jest-environment-jsdom"
)

// builtinReporters name reporters bundled with the runner itself.
var builtinReporters = []string{"default", "github-actions", "summary"}

// backReference matches numbered substitution placeholders such as "$1".
var backReference = regexp.MustCompile(`\$[0-9]`)

type facet struct {
	name    string
	extract func(ctx context.Context, doc *config.Document, opts Options) ([]specifier.Specifier, error)
}

// pure adapts a facet that only reads the document.
func pure(name string, fn func(doc *config.Document) []string) facet {
	return facet{
		name: name,
		extract: func(_ context.Context, doc *config.Document, _ Options) ([]specifier.Specifier, error) {
			return specifier.Deferreds(fn(doc)), nil
		},
	}
}

// facets lists every facet in output order. c is the chain nested projects
// continue from.
func (e *Extractor) facets(c *preset.Chain) []facet {
	projects := func(ctx context.Context, doc *config.Document, opts Options) ([]specifier.Specifier, error) {
		return e.projects(ctx, doc, opts, c)
	}

	return []facet{
		pure("preset", presets),
		{name: "projects", extract: projects},
		pure("runner", func(d *config.Document) []string { return optional(d.Runner) }),
		pure("resolver", func(d *config.Document) []string { return optional(d.Resolver) }),
		pure("testResultsProcessor", func(d *config.Document) []string { return optional(d.TestResultsProcessor) }),
		pure("snapshotResolver", func(d *config.Document) []string { return optional(d.SnapshotResolver) }),
		pure("testSequencer", func(d *config.Document) []string { return optional(d.TestSequencer) }),
		pure("globalSetup", func(d *config.Document) []string { return optional(d.GlobalSetup) }),
		pure("globalTeardown", func(d *config.Document) []string { return optional(d.GlobalTeardown) }),
		pure("testEnvironment", environments),
		pure("reporters", reporters),
		pure("watchPlugins", func(d *config.Document) []string { return names(d.WatchPlugins) }),
		pure("transform", transforms),
		pure("moduleNameMapper", moduleNameMappers),
		pure("snapshotSerializers", func(d *config.Document) []string { return d.SnapshotSerializers }),
		pure("setupFiles", func(d *config.Document) []string { return d.SetupFiles }),
		pure("setupFilesAfterEnv", func(d *config.Document) []string { return d.SetupFilesAfterEnv }),
	}
}

func optional(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

func presets(d *config.Document) []string {
	switch {
	case d.Preset == "":
		return nil
	case config.IsInternal(d.Preset):
		return []string{d.Preset}
	default:
		return []string{config.ExternalPreset(d.Preset)}
	}
}

func environments(d *config.Document) []string {
	if d.TestEnvironment == jsdomEnvironment {
		return []string{jsdomPackage}
	}
	return nil
}

func names(refs []config.ModuleRef) []string {
	var out []string
	for _, r := range refs {
		if r.Name != "" {
			out = append(out, r.Name)
		}
	}
	return out
}

func reporters(d *config.Document) []string {
	return slices.DeleteFunc(names(d.Reporters), func(name string) bool {
		return slices.Contains(builtinReporters, name)
	})
}

func targets(entries []config.MappedRef) []string {
	var out []string
	for _, m := range entries {
		if m.Target.Name != "" {
			out = append(out, m.Target.Name)
		}
	}
	return out
}

func transforms(d *config.Document) []string {
	return targets(d.Transform)
}

// moduleNameMappers drops targets containing back-references: those are
// substitution templates, not module names.
func moduleNameMappers(d *config.Document) []string {
	return slices.DeleteFunc(targets(d.ModuleNameMapper), backReference.MatchString)
}
