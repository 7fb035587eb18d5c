package components

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
	"github.com/go-drift/fomantic/pkg/log"
	"github.com/go-drift/fomantic/pkg/table"
)

// DefaultSortScript is the page script that registers the custom sort
// comparators for the non-default sort tokens.
const DefaultSortScript = "/js/tablesort-custom-sort.js"

// Table renders a sortable table of rows of type R. Each row is keyed by
// the hash of its exported fields, so R should be a struct or a pointer to
// one. Rows with equal content share a key.
type Table[R any] struct {
	// ID of the table element. NewTable generates one.
	ID string
	// ColumnHeadings render the content of each <th>.
	ColumnHeadings []func() []*html.Node
	// Columns render the content of each <td> of a row.
	Columns []func(R) []*html.Node
	// Sorting selects the sort algorithm per column. Missing entries
	// sort as text.
	Sorting []table.SortingAlgorithm
	// ScriptSrc is the custom sort script. Empty means DefaultSortScript.
	ScriptSrc string

	prev    []table.Key
	mounted bool
}

// View is one rendered pass of a Table.
type View struct {
	Script *html.Node
	Table  *html.Node
	Keys   []table.Key
}

// HTML serializes the script and table elements.
func (v *View) HTML() (string, error) {
	return Render(v.Script, v.Table)
}

// NewTable returns a table with a generated element id.
func NewTable[R any](headings []func() []*html.Node, columns []func(R) []*html.Node) *Table[R] {
	return &Table[R]{
		ID:             "table-" + uuid.NewString(),
		ColumnHeadings: headings,
		Columns:        columns,
	}
}

// Render renders items and returns the keyed patch against the previous
// call. Every key is recomputed on each call.
func (t *Table[R]) Render(items []R) (*View, table.Patch) {
	keys := table.Keys(items)

	src := t.ScriptSrc
	if src == "" {
		src = DefaultSortScript
	}
	script := Element("script", []html.Attribute{Attr("src", src), Attr("defer", "")})

	headRow := Element("tr", nil)
	for i, heading := range t.ColumnHeadings {
		var attrs []html.Attribute
		if token := table.SortToken(i, t.Sorting); token != "" {
			attrs = append(attrs, Attr("class", token))
		}
		headRow.AppendChild(Element("th", attrs, heading()...))
	}

	body := Element("tbody", nil)
	for i, item := range items {
		cells := make([]*html.Node, len(t.Columns))
		for c, column := range t.Columns {
			cells[c] = Element("td", nil, column(item)...)
		}
		row := TableRow(cells...)
		row.Attr = append(row.Attr, Attr("data-key", keys[i].String()))
		body.AppendChild(row)
	}

	tbl := Element("table", []html.Attribute{Attr("id", t.ID), Attr("class", "ui sortable basic table")},
		Element("thead", nil, headRow),
		body,
	)

	patch := table.Diff(t.prev, keys)
	t.prev = keys
	return &View{Script: script, Table: tbl, Keys: keys}, patch
}

// Mount enables sorting on the rendered table through the host. Only the
// first successful call reaches the host.
func (t *Table[R]) Mount(h host.Host) error {
	if t.mounted {
		return nil
	}
	if h == nil {
		h = host.Current()
	}
	selector := "#" + t.ID
	obj, err := h.Query(selector)
	if err != nil {
		return &errors.Error{Op: "table.Mount", Kind: errors.KindLookup, Selector: selector, Err: err}
	}
	obj.Call("tablesort")
	t.mounted = true
	log.Named("table").Debug("sortable table initialized", zap.String("id", t.ID))
	return nil
}
