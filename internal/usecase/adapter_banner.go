package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/iho/bankledger/internal/domain"
)

// BannerField is a value printed above the table at a fixed cell.
type BannerField struct {
	Column   string
	Row, Col int
	// Labelled cells hold "label：value"; only the value is kept.
	Labelled bool
}

// BannerSheetConfig describes sheets whose holder, account and currency sit
// in fixed cells above a header at a fixed row.
type BannerSheetConfig struct {
	Fields    []BannerField
	HeaderRow int
	Columns   map[string]string
}

// BannerSheetAdapter reads fixed-layout sheets.
type BannerSheetAdapter struct {
	cfg  BannerSheetConfig
	opts Options
}

// NewBannerSheetAdapter creates a BannerSheetAdapter.
func NewBannerSheetAdapter(cfg BannerSheetConfig, opts Options) *BannerSheetAdapter {
	return &BannerSheetAdapter{cfg: cfg, opts: opts.withDefaults()}
}

// Parse implements SourceAdapter.
func (a *BannerSheetAdapter) Parse(ctx context.Context, file SourceFile) (*FileResult, error) {
	res := &FileResult{}
	for _, sheet := range file.Workbook.SheetNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Sheets++

		grid, err := file.Workbook.Rows(sheet)
		if err != nil {
			res.fail(sheet, "read: %v", err)
			continue
		}
		if grid.Width() == 0 {
			continue
		}
		if grid.Header(a.cfg.HeaderRow) == nil {
			res.fail(sheet, "%v: sheet ends before row %d", domain.ErrUnparsableSheet, a.cfg.HeaderRow+1)
			continue
		}

		t := grid.Table(a.cfg.HeaderRow).Rename(a.cfg.Columns)
		if !t.Has(domain.ColDate) {
			res.fail(sheet, "%v: %s", domain.ErrColumnMissing, domain.ColDate)
			continue
		}
		for _, f := range a.cfg.Fields {
			v := bannerValue(grid.Cell(f.Row, f.Col), f.Labelled)
			if v == "" {
				res.warn("sheet %q: banner cell (%d,%d) for %s is blank", sheet, f.Row, f.Col, f.Column)
				continue
			}
			t.FillBlank(f.Column, v)
		}
		res.add(sheet, t, countLines(t, a.opts.NoTransactionWords))
	}
	return res, nil
}

func bannerValue(cell string, labelled bool) string {
	cell = strings.TrimSpace(cell)
	if !labelled {
		return cell
	}
	if i := strings.IndexAny(cell, "：:"); i >= 0 {
		_, size := utf8.DecodeRuneInString(cell[i:])
		return strings.TrimSpace(cell[i+size:])
	}
	return ""
}
