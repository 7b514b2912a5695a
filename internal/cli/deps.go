package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/specialistvlad/depgrid/internal/app"
	"github.com/spf13/cobra"
)

func (c *command) newDepsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deps [path]",
		Short: "List the modules and entry patterns a jest configuration references",
		Long: `deps resolves a jest configuration file, or the first of jest.config.json,
jest.config.hcl, and package.json found in a directory, and lists the modules
it references followed by its test entry patterns. path defaults to the
current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			report, err := c.app.Dependencies(cmd.Context(), path)
			if err != nil {
				return err
			}
			if asJSON {
				return c.writeJSON(report)
			}
			c.renderDeps(report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON.")
	return cmd
}

func (c *command) renderDeps(report *app.Report) {
	t := newTable(c)
	t.SetTitle("%s", report.ConfigPath)
	t.AppendHeader(table.Row{"#", "Kind", "Specifier"})

	n := 0
	for _, s := range report.Dependencies {
		n++
		t.AppendRow(table.Row{n, s.Kind, s.Value})
	}
	if len(report.Dependencies) > 0 && len(report.Entries) > 0 {
		t.AppendSeparator()
	}
	for _, s := range report.Entries {
		n++
		t.AppendRow(table.Row{n, s.Kind, s.Value})
	}
	t.Render()
}

func (c *command) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.outW, string(data))
	return err
}

func newTable(c *command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.outW)
	t.SetStyle(table.StyleLight)
	return t
}
