package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/depgrid/internal/plugin"
	"github.com/specialistvlad/depgrid/internal/workspace"
)

// WorkspaceReport is the dependency graph between the members of a
// workspace.
type WorkspaceReport struct {
	Root    string
	Graph   workspace.Graph
	Members *workspace.Members
}

// Enabled returns the names of the members that use the jest plugin.
func (r *WorkspaceReport) Enabled() []string {
	var out []string
	for _, name := range r.Members.Names {
		if pkg := r.Members.ByName[name]; pkg != nil && plugin.IsEnabled(pkg.Manifest) {
			out = append(out, name)
		}
	}
	return out
}

// WorkspaceGraph enumerates the workspace rooted at root and builds the
// dependency graph between its members.
func (a *App) WorkspaceGraph(ctx context.Context, root string) (*WorkspaceReport, error) {
	ctx = a.withLogger(ctx)

	members, err := workspace.Enumerate(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate workspace %s: %w", root, err)
	}
	graph := members.Graph()

	a.logger.Info("Workspace graph built.", "root", members.Root, "members", len(graph))
	return &WorkspaceReport{Root: members.Root, Graph: graph, Members: members}, nil
}
