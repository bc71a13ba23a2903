/*
File: table.go
Description: Table data model for tabreport. A Table is an ordered set of
uniquely named columns sharing one row count. Tables are read-only once built.
*/

package frame

import "fmt"

// Table is an ordered mapping from column name to Column with a row count
// shared by every column.
type Table struct {
	source  string
	columns []*Column
	byName  map[string]int
	rows    int
}

// NewTable builds a table from the given columns. Every column must carry a
// unique name and the same length.
func NewTable(source string, columns []*Column) (*Table, error) {
	t := &Table{
		source: source,
		byName: make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if _, dup := t.byName[col.Name()]; dup {
			return nil, fmt.Errorf("table %q: duplicate column name %q", source, col.Name())
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("table %q: column %q has %d rows, want %d",
				source, col.Name(), col.Len(), t.rows)
		}
		t.byName[col.Name()] = i
		t.columns = append(t.columns, col)
	}

	return t, nil
}

// Source returns the label of the input the table was read from.
func (t *Table) Source() string { return t.source }

// Rows returns the shared row count.
func (t *Table) Rows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Columns returns the columns in table order. The returned slice is a copy;
// the column handles themselves are shared and must be treated as read-only.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column returns the named column, or nil when absent.
func (t *Table) Column(name string) *Column {
	i, ok := t.byName[name]
	if !ok {
		return nil
	}
	return t.columns[i]
}
