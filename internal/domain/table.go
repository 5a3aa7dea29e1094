package domain

import "strings"

// Table is a row collection with string cells. Columns are not reconciled
// with any other table until Concat is called.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates a table; rows are padded or truncated to the column count.
func NewTable(columns []string, rows ...[]string) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	for _, r := range rows {
		t.Rows = append(t.Rows, fitRow(r, len(columns)))
	}
	return t
}

// IsBlank reports whether a cell carries no value.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of col, or -1.
func (t *Table) Index(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Has reports whether the table carries col.
func (t *Table) Has(col string) bool {
	return t.Index(col) >= 0
}

// Value returns the cell at row i of col, or "" when the column is absent.
func (t *Table) Value(i int, col string) string {
	idx := t.Index(col)
	if idx < 0 {
		return ""
	}
	return t.Rows[i][idx]
}

// Column returns a copy of col's cells, or nil when the column is absent.
func (t *Table) Column(col string) []string {
	idx := t.Index(col)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out
}

// SetColumn replaces col or appends it. values must have Len() elements.
func (t *Table) SetColumn(col string, values []string) {
	idx := t.Index(col)
	if idx < 0 {
		t.Columns = append(t.Columns, col)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], values[i])
		}
		return
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
}

// SetConst sets every cell of col to value.
func (t *Table) SetConst(col, value string) {
	values := make([]string, t.Len())
	for i := range values {
		values[i] = value
	}
	t.SetColumn(col, values)
}

// FillBlank sets value into the blank cells of col, adding the column if needed.
func (t *Table) FillBlank(col, value string) {
	values := t.Column(col)
	if values == nil {
		values = make([]string, t.Len())
	}
	for i, v := range values {
		if IsBlank(v) {
			values[i] = value
		}
	}
	t.SetColumn(col, values)
}

// Rename returns a copy with columns renamed through mapping. A column is
// looked up by its exact name first and then by its trimmed name; every
// column is renamed at most once. Columns that end up with the same name are
// coalesced into the first one, keeping the first non-blank cell of each row.
func (t *Table) Rename(mapping map[string]string) *Table {
	target := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		target[i] = c
		if to, ok := mapping[c]; ok {
			target[i] = to
		} else if to, ok := mapping[strings.TrimSpace(c)]; ok {
			target[i] = to
		}
	}

	out := &Table{}
	slot := make([]int, len(target))
	seen := make(map[string]int)
	for i, name := range target {
		if j, ok := seen[name]; ok {
			slot[i] = j
			continue
		}
		seen[name] = len(out.Columns)
		slot[i] = len(out.Columns)
		out.Columns = append(out.Columns, name)
	}

	out.Rows = make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		dst := make([]string, len(out.Columns))
		for i, v := range row {
			if IsBlank(dst[slot[i]]) {
				dst[slot[i]] = v
			}
		}
		out.Rows[r] = dst
	}
	return out
}

// Filter returns a table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(i int) bool) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	for i, r := range t.Rows {
		if keep(i) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

// Concat stacks tables vertically. The result carries the union of all
// column sets in first-seen order; cells of columns a table lacks are blank.
func Concat(tables ...*Table) *Table {
	out := &Table{}
	index := make(map[string]int)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.Columns {
			if _, ok := index[c]; !ok {
				index[c] = len(out.Columns)
				out.Columns = append(out.Columns, c)
			}
		}
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, r := range t.Rows {
			dst := make([]string, len(out.Columns))
			for i, c := range t.Columns {
				dst[index[c]] = r[i]
			}
			out.Rows = append(out.Rows, dst)
		}
	}
	return out
}

func fitRow(r []string, n int) []string {
	out := make([]string, n)
	copy(out, r)
	return out
}
