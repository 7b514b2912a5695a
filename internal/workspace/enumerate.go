package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/specialistvlad/depgrid/internal/ctxlog"
	"github.com/specialistvlad/depgrid/internal/fsutil"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	manifestFile = "package.json"
	pnpmFile     = "pnpm-workspace.yaml"

	// maxManifestReads bounds the number of manifests read at once.
	maxManifestReads = 8
)

// ErrNoWorkspaces is returned by Enumerate when the root declares no member
// patterns.
var ErrNoWorkspaces = errors.New("no workspaces declared")

// Members is the enumerated membership of a workspace, in the shape
// BuildGraph consumes.
type Members struct {
	Root          string
	Names         []string
	PackageNames  mapset.Set[string]
	ByPackageName map[string]*Package
	ByName        map[string]*Package
}

// Graph builds the dependency graph between the members.
func (m *Members) Graph() Graph {
	return BuildGraph(m.Root, m.Names, m.PackageNames, m.ByPackageName, m.ByName)
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// Patterns returns the member patterns declared at root: the "workspaces"
// field of package.json, or else the "packages" list of pnpm-workspace.yaml.
func Patterns(root string) ([]string, error) {
	if manifestPath := filepath.Join(root, manifestFile); fsutil.IsFile(manifestPath) {
		m, err := ReadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		if len(m.Workspaces) > 0 {
			return m.Workspaces, nil
		}
	}

	pnpmPath := filepath.Join(root, pnpmFile)
	if !fsutil.IsFile(pnpmPath) {
		return nil, ErrNoWorkspaces
	}
	data, err := os.ReadFile(pnpmPath)
	if err != nil {
		return nil, err
	}
	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", pnpmPath, err)
	}
	if len(ws.Packages) == 0 {
		return nil, ErrNoWorkspaces
	}
	return ws.Packages, nil
}

// Enumerate discovers the members of the workspace rooted at root and loads
// their manifests. A member is a directory matched by one of the declared
// patterns that holds a package.json file; patterns starting with "!"
// exclude the directories they match.
func Enumerate(ctx context.Context, root string) (*Members, error) {
	logger := ctxlog.FromContext(ctx)

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	patterns, err := Patterns(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("Workspace patterns read.", "root", root, "patterns", patterns)

	names, err := expand(root, patterns)
	if err != nil {
		return nil, err
	}

	pkgs := make([]*Package, len(names))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxManifestReads)
	for i, name := range names {
		g.Go(func() error {
			dir := filepath.Join(root, filepath.FromSlash(name))
			m, err := ReadManifest(filepath.Join(dir, manifestFile))
			if err != nil {
				return fmt.Errorf("workspace member %q: %w", name, err)
			}
			pkgs[i] = &Package{Manifest: m, Dir: dir}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	members := &Members{
		Root:          root,
		Names:         names,
		PackageNames:  mapset.NewSet[string](),
		ByPackageName: make(map[string]*Package, len(names)),
		ByName:        make(map[string]*Package, len(names)),
	}
	for i, name := range names {
		pkg := pkgs[i]
		members.ByName[name] = pkg
		if pkg.Manifest.Name == "" {
			continue
		}
		members.PackageNames.Add(pkg.Manifest.Name)
		members.ByPackageName[pkg.Manifest.Name] = pkg
	}

	logger.Debug("Workspace members enumerated.", "root", root, "count", len(names))
	return members, nil
}

// expand resolves patterns to the sorted, slash-separated member names
// relative to root.
func expand(root string, patterns []string) ([]string, error) {
	fsys := os.DirFS(root)
	included := mapset.NewThreadUnsafeSet[string]()
	var excluded []string

	for _, raw := range patterns {
		pattern, negated := strings.CutPrefix(strings.TrimSpace(raw), "!")
		pattern = strings.TrimSuffix(strings.TrimPrefix(pattern, "./"), "/")
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid workspace pattern %q", raw)
		}
		if negated {
			excluded = append(excluded, pattern)
			continue
		}

		matches, err := doublestar.Glob(fsys, path.Join(pattern, manifestFile))
		if err != nil {
			return nil, fmt.Errorf("expanding workspace pattern %q: %w", raw, err)
		}
		for _, match := range matches {
			name := path.Dir(match)
			if name == "." || slices.Contains(strings.Split(name, "/"), "node_modules") {
				continue
			}
			included.Add(name)
		}
	}

	names := included.ToSlice()
	names = slices.DeleteFunc(names, func(name string) bool {
		for _, pattern := range excluded {
			if ok, _ := doublestar.Match(pattern, name); ok {
				return true
			}
		}
		return false
	})
	slices.Sort(names)
	return names, nil
}
