package usecase

import (
	"context"

	"github.com/iho/bankledger/internal/domain"
)

// GenericAdapter serves profiles that only need a column map: every sheet is
// located, renamed and kept when it carries transaction dates.
type GenericAdapter struct {
	profile *domain.Profile
	opts    Options
}

// NewGenericAdapter creates a GenericAdapter.
func NewGenericAdapter(p *domain.Profile, opts Options) *GenericAdapter {
	return &GenericAdapter{profile: p, opts: opts.withDefaults()}
}

// Parse implements SourceAdapter.
func (a *GenericAdapter) Parse(ctx context.Context, file SourceFile) (*FileResult, error) {
	res := &FileResult{}
	mapping := a.profile.ColumnMap()
	nameCol := a.profile.SheetName().Column()

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

		header, status := LocateHeader(grid, a.opts.HeaderProbes)
		switch status {
		case HeaderEmpty:
			continue
		case HeaderUnparsable:
			res.fail(sheet, "%v within %d rows", domain.ErrUnparsableSheet, a.opts.HeaderProbes)
			continue
		}

		t := grid.Table(header).Rename(mapping)
		if nameCol != "" {
			t.FillBlank(nameCol, sheet)
		}

		if !t.Has(domain.ColDate) {
			if a.profile.TolerateNoDataSheets() {
				continue
			}
			res.fail(sheet, "%v: %s", domain.ErrColumnMissing, domain.ColDate)
			continue
		}
		if allBlank(t.Column(domain.ColDate)) {
			if a.profile.TolerateEmptySheets() {
				continue
			}
			res.fail(sheet, "column %s holds no value", domain.ColDate)
			continue
		}

		res.add(sheet, t, countLines(t, a.opts.NoTransactionWords))
	}
	return res, nil
}
