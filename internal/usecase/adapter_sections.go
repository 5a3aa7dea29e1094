package usecase

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/iho/bankledger/internal/domain"
)

// SectionedSheetConfig describes sheets holding one section per account.
// Every section repeats the table header and is preceded by a banner row
// such as "户名：张三 账号：6221… 币种：人民币".
type SectionedSheetConfig struct {
	// Sheets restricts parsing to these names; empty means every sheet.
	Sheets  []string
	Columns map[string]string
	// BannerLabels maps banner labels onto canonical columns.
	BannerLabels map[string]string
}

// SectionedSheetAdapter splits repeated-header sheets into sections.
type SectionedSheetAdapter struct {
	cfg  SectionedSheetConfig
	opts Options
}

// NewSectionedSheetAdapter creates a SectionedSheetAdapter.
func NewSectionedSheetAdapter(cfg SectionedSheetConfig, opts Options) *SectionedSheetAdapter {
	return &SectionedSheetAdapter{cfg: cfg, opts: opts.withDefaults()}
}

// Parse implements SourceAdapter.
func (a *SectionedSheetAdapter) Parse(ctx context.Context, file SourceFile) (*FileResult, error) {
	sheets := file.Workbook.SheetNames()
	if len(a.cfg.Sheets) > 0 {
		name, err := findSheet(file.Workbook, a.cfg.Sheets)
		if err != nil {
			return nil, err
		}
		sheets = []string{name}
	}

	res := &FileResult{}
	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Sheets++

		grid, err := file.Workbook.Rows(sheet)
		if err != nil {
			res.fail(sheet, "read: %v", err)
			continue
		}
		header, status := LocateHeader(grid, a.opts.HeaderProbes)
		switch status {
		case HeaderEmpty:
			continue
		case HeaderUnparsable:
			res.fail(sheet, "%v within %d rows", domain.ErrUnparsableSheet, a.opts.HeaderProbes)
			continue
		}

		sections := a.sections(grid, header, res, sheet)
		lines := 0
		tables := make([]*domain.Table, 0, len(sections))
		for _, s := range sections {
			tables = append(tables, s)
			lines += countLines(s, a.opts.NoTransactionWords)
		}
		t := domain.Concat(tables...)
		if !t.Has(domain.ColDate) {
			res.fail(sheet, "%v: %s", domain.ErrColumnMissing, domain.ColDate)
			continue
		}
		res.add(sheet, t, lines)
	}
	return res, nil
}

// sections splits the grid at every repetition of the header row. Each
// section takes its banner from the nearest non-blank row above its header;
// a section without one is left unlabelled and reported.
func (a *SectionedSheetAdapter) sections(g domain.Grid, header int, res *FileResult, sheet string) []*domain.Table {
	cols := g.Header(header)
	key := rowKey(g[header])

	starts := []int{header}
	for r := header + 1; r < len(g); r++ {
		if rowKey(g[r]) == key {
			starts = append(starts, r)
		}
	}

	banners := make([]map[string]string, len(starts))
	bannerRows := make([]int, len(starts))
	floor := -1
	for i, start := range starts {
		bannerRows[i], banners[i] = a.bannerAbove(g, start, floor)
		if bannerRows[i] < 0 {
			res.warn("sheet %q: section at row %d has no banner", sheet, start+1)
		}
		floor = start
	}

	out := make([]*domain.Table, 0, len(starts))
	for i, start := range starts {
		end := len(g)
		if i+1 < len(starts) {
			end = starts[i+1]
			if bannerRows[i+1] >= 0 {
				end = bannerRows[i+1]
			}
		}

		t := a.section(g, cols, start+1, end)
		for _, col := range sortedKeys(banners[i]) {
			t.FillBlank(col, banners[i][col])
		}
		out = append(out, t)
	}
	return out
}

// bannerAbove looks upward from a header row, skipping blank rows, and
// returns the first row above floor when it is a banner. row is -1 otherwise.
func (a *SectionedSheetAdapter) bannerAbove(g domain.Grid, header, floor int) (row int, banner map[string]string) {
	for r := header - 1; r > floor; r-- {
		if g.RowBlank(r) {
			continue
		}
		if b, ok := a.banner(g, r); ok {
			return r, b
		}
		break
	}
	return -1, nil
}

func (a *SectionedSheetAdapter) section(g domain.Grid, cols []string, from, to int) *domain.Table {
	for r := from; r < to; r++ {
		if g.RowBlank(r) {
			continue
		}
		if isSentinel(strings.Join(g[r], " "), []string{a.opts.NoResultsMarker}) {
			return (&domain.Table{Columns: cols}).Rename(a.cfg.Columns)
		}
		break
	}
	return g.Section(cols, from, to).Rename(a.cfg.Columns)
}

// banner reads label/value pairs from a banner row. ok is false when the row
// carries no known label.
func (a *SectionedSheetAdapter) banner(g domain.Grid, row int) (map[string]string, bool) {
	if row < 0 || row >= len(g) {
		return nil, false
	}
	tokens := strings.FieldsFunc(strings.Join(g[row], " "), func(r rune) bool {
		return unicode.IsSpace(r) || r == '：' || r == ':'
	})

	out := make(map[string]string)
	found := false
	for i := 0; i < len(tokens); i++ {
		col, ok := a.cfg.BannerLabels[tokens[i]]
		if !ok {
			continue
		}
		found = true
		if i+1 >= len(tokens) {
			break
		}
		if _, isLabel := a.cfg.BannerLabels[tokens[i+1]]; isLabel {
			continue
		}
		if _, seen := out[col]; !seen {
			out[col] = tokens[i+1]
		}
		i++
	}
	return out, found
}

func rowKey(row []string) string {
	cells := make([]string, 0, len(row))
	for _, c := range row {
		cells = append(cells, strings.TrimSpace(c))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return strings.Join(cells, "\x00")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
