package cli

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/specialistvlad/depgrid/internal/app"
	"github.com/spf13/cobra"
)

func (c *command) newGraphCommand() *cobra.Command {
	var asDOT bool

	cmd := &cobra.Command{
		Use:   "graph [root]",
		Short: "Show the dependency graph between workspace members",
		Long: `graph enumerates the members of the workspace at root (the "workspaces"
field of package.json, or pnpm-workspace.yaml) and shows which members each
member depends on. root defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			report, err := c.app.WorkspaceGraph(cmd.Context(), root)
			if err != nil {
				return err
			}
			if asDOT {
				return report.Graph.WriteDOT(c.outW)
			}
			c.renderGraph(report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asDOT, "dot", false, "Print the graph in Graphviz DOT format.")
	return cmd
}

func (c *command) renderGraph(report *app.WorkspaceReport) {
	enabled := report.Enabled()

	t := newTable(c)
	t.SetTitle("%s", report.Root)
	t.AppendHeader(table.Row{"Member", "Package", "Depends On", "Jest"})
	for _, name := range report.Members.Names {
		pkg := report.Members.ByName[name]
		if pkg == nil {
			continue
		}

		var deps []string
		for _, dir := range report.Graph.Dependencies(pkg.Dir) {
			deps = append(deps, relative(report.Root, dir))
		}
		jest := ""
		if slices.Contains(enabled, name) {
			jest = "yes"
		}
		t.AppendRow(table.Row{name, pkg.Manifest.Name, strings.Join(deps, "\n"), jest})
	}
	t.Render()
}

// relative shortens dir to a slash-separated path under root when possible.
func relative(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return filepath.ToSlash(rel)
}
