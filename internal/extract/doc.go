// Package extract walks a merged configuration document and produces the
// ordered list of module specifiers it references.
//
// Each facet (preset, projects, runner, reporters, transform, ...) is handled
// by its own function returning its own slice. Handlers are evaluated
// concurrently and their results are concatenated in a fixed facet order, so
// the output is deterministic regardless of completion order. Specifiers are
// never deduplicated; a module referenced by two facets appears twice.
package extract
