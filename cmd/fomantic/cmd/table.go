package cmd

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/go-drift/fomantic/pkg/components"
	"github.com/go-drift/fomantic/pkg/table"
)

func init() {
	RegisterCommand(&Command{
		Name:  "table",
		Short: "Render a sortable table",
		Long: `Render rows from a YAML file as a sortable table and print the HTML.
With a "next" list, render a second pass and print the keyed patch
between the two passes.

File keys:
  id        table element id (default: generated)
  columns   list of {heading, field, sort}; sort is default, float,
            integer or date
  rows      list of mappings, one per row
  next      optional second pass of rows`,
		Usage: "fomantic table -f rows.yaml",
		Run:   runTable,
	})
}

type tableColumn struct {
	Heading string `yaml:"heading"`
	Field   string `yaml:"field"`
	Sort    string `yaml:"sort"`
}

type tableFile struct {
	ID      string           `yaml:"id"`
	Columns []tableColumn    `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
	Next    []map[string]any `yaml:"next"`
}

type row = map[string]any

func runTable(args []string) error {
	var f tableFile
	if err := loadScenario(args, &f); err != nil {
		return err
	}
	resolved, err := resolveConfig()
	if err != nil {
		return err
	}

	headings := make([]func() []*html.Node, len(f.Columns))
	columns := make([]func(row) []*html.Node, len(f.Columns))
	sorting := make([]table.SortingAlgorithm, len(f.Columns))
	for i, c := range f.Columns {
		algo, err := table.ParseSortingAlgorithm(orDefault(c.Sort))
		if err != nil {
			return fmt.Errorf("column %q: %w", c.Heading, err)
		}
		sorting[i] = algo
		heading, field := c.Heading, c.Field
		headings[i] = func() []*html.Node { return []*html.Node{components.Text(heading)} }
		columns[i] = func(r row) []*html.Node {
			v, ok := r[field]
			if !ok {
				return nil
			}
			return []*html.Node{components.Text(fmt.Sprint(v))}
		}
	}

	t := components.NewTable(headings, columns)
	t.Sorting = sorting
	t.ScriptSrc = resolved.SortScript
	if f.ID != "" {
		t.ID = f.ID
	}

	view, _ := t.Render(f.Rows)
	out, err := view.HTML()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)

	if f.Next == nil {
		return nil
	}
	_, patch := t.Render(f.Next)
	fmt.Fprintln(stdout, "patch:")
	for _, r := range patch.Removed {
		fmt.Fprintf(stdout, "  - %s at %d\n", r.Key, r.Index)
	}
	for _, in := range patch.Inserted {
		fmt.Fprintf(stdout, "  + %s at %d\n", in.Key, in.Index)
	}
	for _, m := range patch.Moved {
		fmt.Fprintf(stdout, "  ~ %s %d -> %d\n", m.Key, m.From, m.To)
	}
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "default"
	}
	return s
}
