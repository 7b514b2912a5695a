// This file contains the logic for translating evaluated cty values into the
// typed configuration model defined in the config package. Values of an
// unexpected shape are skipped, never reported: an unreadable facet simply
// contributes nothing.

package hcl_adapter

import (
	"context"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// translateDocument builds a Document from the top-level attributes of a
// configuration. Unrecognized attributes are ignored.
func translateDocument(ctx context.Context, attrs map[string]cty.Value) *config.Document {
	logger := ctxlog.FromContext(ctx)

	doc := &config.Document{
		Preset:               stringAttr(attrs, "preset"),
		Projects:             translateProjects(ctx, attrs["projects"]),
		Runner:               stringAttr(attrs, "runner"),
		Resolver:             stringAttr(attrs, "resolver"),
		TestResultsProcessor: stringAttr(attrs, "testResultsProcessor"),
		SnapshotResolver:     stringAttr(attrs, "snapshotResolver"),
		TestSequencer:        stringAttr(attrs, "testSequencer"),
		GlobalSetup:          stringAttr(attrs, "globalSetup"),
		GlobalTeardown:       stringAttr(attrs, "globalTeardown"),
		TestEnvironment:      stringAttr(attrs, "testEnvironment"),
		Reporters:            translateRefs(attrs["reporters"]),
		WatchPlugins:         translateRefs(attrs["watchPlugins"]),
		Transform:            translateMapped(attrs["transform"]),
		ModuleNameMapper:     translateMapped(attrs["moduleNameMapper"]),
		SnapshotSerializers:  translateStrings(attrs["snapshotSerializers"]),
		SetupFiles:           translateStrings(attrs["setupFiles"]),
		SetupFilesAfterEnv:   translateStrings(attrs["setupFilesAfterEnv"]),
		RootDir:              stringAttr(attrs, "rootDir"),
		TestMatch:            translateStrings(attrs["testMatch"]),
	}

	logger.Debug("Translated configuration document.",
		"preset", doc.Preset,
		"projects", len(doc.Projects),
		"reporters", len(doc.Reporters),
		"transform", len(doc.Transform),
	)
	return doc
}

// translateProjects accepts path strings and inline configuration objects.
func translateProjects(ctx context.Context, val cty.Value) []config.Project {
	elems, ok := sequence(val)
	if !ok {
		return nil
	}
	out := make([]config.Project, 0, len(elems))
	for _, elem := range elems {
		if s, ok := stringValue(elem); ok {
			out = append(out, config.PathProject(s))
			continue
		}
		if isMapping(elem) {
			out = append(out, config.InlineProject(translateDocument(ctx, attributes(elem))))
		}
	}
	return out
}

// translateRefs accepts entries shaped as "name" or ["name", options...].
func translateRefs(val cty.Value) []config.ModuleRef {
	elems, ok := sequence(val)
	if !ok {
		return nil
	}
	out := make([]config.ModuleRef, 0, len(elems))
	for _, elem := range elems {
		if ref, ok := translateRef(elem); ok {
			out = append(out, ref)
		}
	}
	return out
}

func translateRef(val cty.Value) (config.ModuleRef, bool) {
	if s, ok := stringValue(val); ok {
		return config.Plain(s), true
	}
	elems, ok := sequence(val)
	if !ok || len(elems) == 0 {
		return config.ModuleRef{}, false
	}
	name, ok := stringValue(elems[0])
	if !ok {
		return config.ModuleRef{}, false
	}
	return config.Tuple(name, elems[1:]...), true
}

// translateMapped reads a pattern → reference object. cty objects carry no
// insertion order, so entries come out sorted by pattern.
func translateMapped(val cty.Value) []config.MappedRef {
	if !isMapping(val) {
		return nil
	}
	out := make([]config.MappedRef, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		ref, ok := translateRef(elem)
		if !ok {
			continue
		}
		out = append(out, config.MappedRef{Pattern: key.AsString(), Target: ref})
	}
	return out
}

func translateStrings(val cty.Value) []string {
	elems, ok := sequence(val)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		if s, ok := stringValue(elem); ok {
			out = append(out, s)
		}
	}
	return out
}

func stringAttr(attrs map[string]cty.Value, name string) string {
	val, ok := attrs[name]
	if !ok {
		return ""
	}
	s, _ := stringValue(val)
	return s
}
