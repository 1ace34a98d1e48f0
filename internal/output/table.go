package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders shard and share listings as aligned text columns: one
// row per shard or share, headers naming the columns (index, type,
// file).
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers. A table with
// no headers renders rows only.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Rows shorter than the header leave trailing
// columns blank; longer rows extend the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the aligned table to w, two spaces between columns. An
// empty table renders nothing.
func (t *Table) Render(w io.Writer) error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.headers) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(t.headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// String renders the table to a string, for callers composing larger
// text output.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}
