package config

import (
	"path"
	"path/filepath"
	"strings"
)

// presetSuffix is appended to external preset names, following the package
// naming convention for published presets.
const presetSuffix = "jest-preset"

// IsInternal reports whether a preset reference points at a local file
// (relative or absolute path) rather than at a package name.
func IsInternal(ref string) bool {
	return strings.HasPrefix(ref, ".") || filepath.IsAbs(ref)
}

// PresetPath resolves an internal preset reference against the directory of
// the document that declared it.
func PresetPath(ref, dir string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(dir, ref)
}

// ExternalPreset returns the module specifier for an external preset name.
func ExternalPreset(name string) string {
	return path.Join(name, presetSuffix)
}

// Merge lays child over parent and returns the result as a new, resolved
// document. Every field set on child keeps child's value; every field unset on
// child is inherited from parent. Neither input is modified.
func Merge(child, parent *Document) *Document {
	if parent == nil {
		return child.MarkResolved()
	}
	out := *parent
	out.Path = child.Path

	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	str(&out.Preset, child.Preset)
	str(&out.Runner, child.Runner)
	str(&out.Resolver, child.Resolver)
	str(&out.TestResultsProcessor, child.TestResultsProcessor)
	str(&out.SnapshotResolver, child.SnapshotResolver)
	str(&out.TestSequencer, child.TestSequencer)
	str(&out.GlobalSetup, child.GlobalSetup)
	str(&out.GlobalTeardown, child.GlobalTeardown)
	str(&out.TestEnvironment, child.TestEnvironment)
	str(&out.RootDir, child.RootDir)

	if child.Projects != nil {
		out.Projects = child.Projects
	}
	if child.Reporters != nil {
		out.Reporters = child.Reporters
	}
	if child.WatchPlugins != nil {
		out.WatchPlugins = child.WatchPlugins
	}
	if child.Transform != nil {
		out.Transform = child.Transform
	}
	if child.ModuleNameMapper != nil {
		out.ModuleNameMapper = child.ModuleNameMapper
	}
	if child.SnapshotSerializers != nil {
		out.SnapshotSerializers = child.SnapshotSerializers
	}
	if child.SetupFiles != nil {
		out.SetupFiles = child.SetupFiles
	}
	if child.SetupFilesAfterEnv != nil {
		out.SetupFilesAfterEnv = child.SetupFilesAfterEnv
	}
	if child.TestMatch != nil {
		out.TestMatch = child.TestMatch
	}

	out.resolved = true
	return &out
}
