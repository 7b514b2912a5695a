package config

import "github.com/zclconf/go-cty/cty"

// Document is the typed view of a single test-runner configuration document.
//
// A string field is unset when empty. A slice field is unset when nil; an
// explicitly empty slice is set and overrides a parent value during Merge.
type Document struct {
	// Path is the file the document was loaded from. It is empty for inline
	// project documents nested inside another document.
	Path string

	Preset   string
	Projects []Project

	Runner               string
	Resolver             string
	TestResultsProcessor string
	SnapshotResolver     string
	TestSequencer        string
	GlobalSetup          string
	GlobalTeardown       string
	TestEnvironment      string

	Reporters    []ModuleRef
	WatchPlugins []ModuleRef

	Transform        []MappedRef
	ModuleNameMapper []MappedRef

	SnapshotSerializers []string
	SetupFiles          []string
	SetupFilesAfterEnv  []string

	RootDir   string
	TestMatch []string

	resolved bool
}

// Resolved reports whether the document's internal preset chain has already
// been merged into it.
func (d *Document) Resolved() bool {
	return d != nil && d.resolved
}

// MarkResolved returns a shallow copy of d flagged as fully merged.
func (d *Document) MarkResolved() *Document {
	cp := *d
	cp.resolved = true
	return &cp
}

// RefKind tags the shape a module reference was declared with.
type RefKind uint8

const (
	// RefPlain is a bare string, e.g. "jest-junit".
	RefPlain RefKind = iota
	// RefTuple is a [name, options...] tuple, e.g. ["jest-junit", {...}].
	RefTuple
)

// ModuleRef is a module reference that was declared either as a bare string
// or as a tuple whose first element names the module.
type ModuleRef struct {
	Kind RefKind
	Name string
	// Rest holds the tuple elements after the name. Always empty for RefPlain.
	Rest []cty.Value
}

// Plain builds a RefPlain reference.
func Plain(name string) ModuleRef {
	return ModuleRef{Kind: RefPlain, Name: name}
}

// Tuple builds a RefTuple reference.
func Tuple(name string, rest ...cty.Value) ModuleRef {
	return ModuleRef{Kind: RefTuple, Name: name, Rest: rest}
}

// MappedRef is one pattern → module entry of a mapping facet such as
// transform or moduleNameMapper.
type MappedRef struct {
	Pattern string
	Target  ModuleRef
}

// ProjectKind tags the shape of a projects entry.
type ProjectKind uint8

const (
	// ProjectPath is a project given as a path or glob string.
	ProjectPath ProjectKind = iota
	// ProjectInline is a project given as a nested configuration document.
	ProjectInline
)

// Project is one entry of the projects facet.
type Project struct {
	Kind   ProjectKind
	Path   string
	Config *Document
}

// PathProject builds a ProjectPath entry.
func PathProject(p string) Project {
	return Project{Kind: ProjectPath, Path: p}
}

// InlineProject builds a ProjectInline entry.
func InlineProject(doc *Document) Project {
	return Project{Kind: ProjectInline, Config: doc}
}
