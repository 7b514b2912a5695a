package workspace

import (
	"path/filepath"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Graph maps the absolute directory of every workspace member to the set of
// member directories it depends on. A member that declares a dependency on
// its own package name points at itself.
type Graph map[string]mapset.Set[string]

// BuildGraph builds the dependency graph of the members named in names.
//
// byName resolves a member name (its path relative to rootDir) to its
// Package; members without one are skipped. A declared dependency becomes an
// edge only when its name is in packageNames and resolves through
// byPackageName; every other dependency is external and ignored.
func BuildGraph(rootDir string, names []string, packageNames mapset.Set[string], byPackageName, byName map[string]*Package) Graph {
	graph := make(Graph, len(names))
	for _, name := range names {
		pkg, ok := byName[name]
		if !ok || pkg == nil || pkg.Manifest == nil {
			continue
		}

		deps := mapset.NewSet[string]()
		for _, section := range pkg.Manifest.Sections() {
			for dep := range section {
				if !packageNames.Contains(dep) {
					continue
				}
				if target, ok := byPackageName[dep]; ok && target != nil {
					deps.Add(target.Dir)
				}
			}
		}
		graph[filepath.Join(rootDir, name)] = deps
	}
	return graph
}

// Dirs returns the member directories of the graph, sorted.
func (g Graph) Dirs() []string {
	dirs := make([]string, 0, len(g))
	for dir := range g {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs
}

// Dependencies returns the sorted dependency directories of dir, or nil when
// dir is not a member.
func (g Graph) Dependencies(dir string) []string {
	deps, ok := g[dir]
	if !ok {
		return nil
	}
	out := deps.ToSlice()
	slices.Sort(out)
	return out
}
