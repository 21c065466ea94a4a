package insight

import (
	"cmp"
	"slices"
	"strconv"
)

// ColTotal is the row-sum column appended to count tables.
const ColTotal = "Total"

// Pivot is a labeled two-way table. Row order is meaningful: it is the order
// the rows are reported and drawn in.
type Pivot struct {
	Name    string     `json:"name"`
	Index   string     `json:"index"`
	Columns []string   `json:"columns"`
	Rows    []PivotRow `json:"rows"`
}

// PivotRow is one keyed row of a Pivot; Values align with Pivot.Columns.
type PivotRow struct {
	Key    string    `json:"key"`
	Values []float64 `json:"values"`
}

// Len returns the number of rows.
func (p *Pivot) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Rows)
}

// Keys returns the row keys in order.
func (p *Pivot) Keys() []string {
	keys := make([]string, 0, p.Len())
	for _, r := range p.Rows {
		keys = append(keys, r.Key)
	}
	return keys
}

// ColumnIndex returns the position of col, or -1.
func (p *Pivot) ColumnIndex(col string) int {
	return slices.Index(p.Columns, col)
}

// Column returns the values of col down the rows, or nil if absent.
func (p *Pivot) Column(col string) []float64 {
	i := p.ColumnIndex(col)
	if i < 0 {
		return nil
	}
	out := make([]float64, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, r.Values[i])
	}
	return out
}

// Value returns the cell at (key, col).
func (p *Pivot) Value(key, col string) (float64, bool) {
	i := p.ColumnIndex(col)
	if i < 0 {
		return 0, false
	}
	for _, r := range p.Rows {
		if r.Key == key {
			return r.Values[i], true
		}
	}
	return 0, false
}

// Slice returns a copy of rows [from, to), clamped to the table bounds.
func (p *Pivot) Slice(from, to int) *Pivot {
	from = max(0, min(from, p.Len()))
	to = max(from, min(to, p.Len()))
	return p.withRows(p.Rows[from:to])
}

// Reversed returns a copy with the row order reversed.
func (p *Pivot) Reversed() *Pivot {
	out := p.withRows(p.Rows)
	slices.Reverse(out.Rows)
	return out
}

// Renamed returns a shallow copy carrying a new name.
func (p *Pivot) Renamed(name string) *Pivot {
	out := p.withRows(p.Rows)
	out.Name = name
	return out
}

// SortDesc orders rows by col descending, ties by key ascending.
func (p *Pivot) SortDesc(col string) {
	i := p.ColumnIndex(col)
	if i < 0 {
		return
	}
	slices.SortStableFunc(p.Rows, func(a, b PivotRow) int {
		if c := cmp.Compare(b.Values[i], a.Values[i]); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
}

func (p *Pivot) withRows(rows []PivotRow) *Pivot {
	cp := make([]PivotRow, len(rows))
	for i, r := range rows {
		cp[i] = PivotRow{Key: r.Key, Values: slices.Clone(r.Values)}
	}
	return &Pivot{Name: p.Name, Index: p.Index, Columns: slices.Clone(p.Columns), Rows: cp}
}

// crossTab accumulates counts keyed by (row, column).
type crossTab struct {
	cells map[string]map[string]int
}

func newCrossTab() *crossTab {
	return &crossTab{cells: make(map[string]map[string]int)}
}

func (c *crossTab) add(row, col string) {
	c.addN(row, col, 1)
}

func (c *crossTab) addN(row, col string, n int) {
	r, ok := c.cells[row]
	if !ok {
		r = make(map[string]int)
		c.cells[row] = r
	}
	r[col] += n
}

func (c *crossTab) get(row, col string) int {
	return c.cells[row][col]
}

// rowKeys returns the row keys in ascending order.
func (c *crossTab) rowKeys() []string {
	keys := make([]string, 0, len(c.cells))
	for k := range c.cells {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// colKeys returns every column seen, in ascending order.
func (c *crossTab) colKeys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, r := range c.cells {
		for k := range r {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	slices.Sort(keys)
	return keys
}

// pivot lays the counts out over cols for every row key, zero-filling absent
// cells, and appends a Total column when withTotal is set. Rows come out in
// key order.
func (c *crossTab) pivot(name, index string, cols []string, withTotal bool) *Pivot {
	return c.pivotRows(name, index, c.rowKeys(), cols, withTotal)
}

func (c *crossTab) pivotRows(name, index string, rows, cols []string, withTotal bool) *Pivot {
	columns := slices.Clone(cols)
	if withTotal {
		columns = append(columns, ColTotal)
	}
	p := &Pivot{Name: name, Index: index, Columns: columns, Rows: make([]PivotRow, 0, len(rows))}
	for _, key := range rows {
		values := make([]float64, 0, len(columns))
		total := 0
		for _, col := range cols {
			n := c.get(key, col)
			total += n
			values = append(values, float64(n))
		}
		if withTotal {
			values = append(values, float64(total))
		}
		p.Rows = append(p.Rows, PivotRow{Key: key, Values: values})
	}
	return p
}

// counter ranks single keys by frequency.
type counter map[string]int

// top returns the n most frequent keys, ties broken by key ascending.
func (c counter) top(n int) []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := cmp.Compare(c[b], c[a]); d != 0 {
			return d
		}
		return cmp.Compare(a, b)
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
