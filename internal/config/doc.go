// Package config defines the format-agnostic configuration document model
// used by the preset merger and the facet extractor, along with the Loader
// interface that turns a path into a Document.
//
// Documents are immutable once loaded. They are combined only by Merge, which
// performs a shallow, field-level override: the child's set fields win and
// unset child fields inherit the parent's. Concrete loaders, such as the HCL
// and JSON one, live in separate packages.
package config
