package domain

import "fmt"

// PlaceholderPrefix names header cells that were blank in the source.
const PlaceholderPrefix = "Unnamed: "

// Grid is a raw sheet: rows of cells exactly as the source reader produced them.
type Grid [][]string

// IsPlaceholder reports whether a header name was generated for a blank cell.
func IsPlaceholder(name string) bool {
	return len(name) >= len(PlaceholderPrefix) && name[:len(PlaceholderPrefix)] == PlaceholderPrefix
}

// Cell returns the cell at (row, col), or "" outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Width returns the number of columns up to the right-most non-blank cell.
func (g Grid) Width() int {
	w := 0
	for _, r := range g {
		for i := len(r) - 1; i >= w; i-- {
			if !IsBlank(r[i]) {
				w = i + 1
				break
			}
		}
	}
	return w
}

// RowBlank reports whether every cell of row is blank.
func (g Grid) RowBlank(row int) bool {
	if row < 0 || row >= len(g) {
		return true
	}
	for _, c := range g[row] {
		if !IsBlank(c) {
			return false
		}
	}
	return true
}

// Header returns the column names the sheet yields when row is its header.
// Blank cells become placeholders; repeated names get ".N" suffixes until they
// are unique. A sheet
// without any value, or a row past the end, yields no columns.
func (g Grid) Header(row int) []string {
	width := g.Width()
	if width == 0 || row < 0 || row >= len(g) {
		return nil
	}
	names := make([]string, width)
	counts := make(map[string]int)
	for i := 0; i < width; i++ {
		name := g.Cell(row, i)
		if IsBlank(name) {
			name = fmt.Sprintf("%s%d", PlaceholderPrefix, i)
		}
		// A generated "A.1" must not collide with a literal "A.1" header.
		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
			n = counts[name]
		}
		counts[name] = n + 1
		names[i] = name
	}
	return names
}

// Table parses the grid with header as the header row. Rows above the
// header and wholly blank rows below it are discarded.
func (g Grid) Table(header int) *Table {
	cols := g.Header(header)
	if cols == nil {
		return &Table{}
	}
	return g.Section(cols, header+1, len(g))
}

// Section builds a table with the given columns from rows [from, to).
// Wholly blank rows are skipped.
func (g Grid) Section(cols []string, from, to int) *Table {
	t := &Table{Columns: append([]string(nil), cols...)}
	if to > len(g) {
		to = len(g)
	}
	for r := from; r < to; r++ {
		if g.RowBlank(r) {
			continue
		}
		t.Rows = append(t.Rows, fitRow(g[r], len(cols)))
	}
	return t
}
