// Package workspace models the member packages of a monorepo and the
// dependency graph between them.
//
// Enumerate discovers the members declared by a workspace root, and
// BuildGraph turns them into a Graph that maps every member directory to the
// directories of the other members it depends on. Dependencies on packages
// outside the workspace are not represented.
package workspace
