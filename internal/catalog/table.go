package catalog

import (
	"slices"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
)

// Table is an in-memory catalog: the header columns present in the source and its records.
// Tables are treated as immutable once loaded; transforms copy records out.
type Table struct {
	Columns []string
	Records []Record
}

// NewTable builds a table from records with the given column set.
func NewTable(columns []string, records []Record) *Table {
	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, normalizeColumnName(c))
	}
	return &Table{Columns: cols, Records: records}
}

// Has reports whether the column is present in the table header.
func (t *Table) Has(col string) bool {
	return slices.Contains(t.Columns, normalizeColumnName(col))
}

// Require returns a missing-column error naming every absent column, or nil.
// It is called by every transform before touching any record.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return domainerrors.MissingColumns(missing...)
	}
	return nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Filter returns a new table with the records for which keep returns true.
func (t *Table) Filter(keep func(Record) bool) *Table {
	out := make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Table{Columns: slices.Clone(t.Columns), Records: out}
}
