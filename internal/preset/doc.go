// Package preset resolves chains of extensible configurations. A document
// that declares an internal preset (a local file path) is laid over the
// recursively resolved preset document; external presets (package names) are
// left in place for the facet extractor to report as dependencies.
//
// Every chain carries the set of paths already being resolved, so a preset
// cycle fails with config.CycleError instead of recursing without bound.
package preset
