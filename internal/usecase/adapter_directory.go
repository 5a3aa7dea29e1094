package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/iho/bankledger/internal/domain"
)

// DirectoryJoinConfig describes a workbook whose transactions reference
// account details kept on a separate directory sheet.
type DirectoryJoinConfig struct {
	// Sheet names in order of preference; exports renamed them over time.
	TransactionSheets []string
	DirectorySheets   []string

	TransactionColumns map[string]string
	DirectoryColumns   map[string]string

	// JoinKey is the canonical column shared by both sheets.
	JoinKey string
	// CollapseColumn, when set, gathers every distinct directory value of
	// that column per key, joined with Separator.
	CollapseColumn string
	Separator      string
}

// DirectoryJoinAdapter joins a transaction sheet with its directory sheet.
type DirectoryJoinAdapter struct {
	cfg  DirectoryJoinConfig
	opts Options
}

// NewDirectoryJoinAdapter creates a DirectoryJoinAdapter.
func NewDirectoryJoinAdapter(cfg DirectoryJoinConfig, opts Options) *DirectoryJoinAdapter {
	if cfg.Separator == "" {
		cfg.Separator = "/"
	}
	return &DirectoryJoinAdapter{cfg: cfg, opts: opts.withDefaults()}
}

// Parse implements SourceAdapter. Missing sheets are structural errors.
func (a *DirectoryJoinAdapter) Parse(ctx context.Context, file SourceFile) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wb := file.Workbook

	txSheet, err := findSheet(wb, a.cfg.TransactionSheets)
	if err != nil {
		return nil, fmt.Errorf("%s: transactions: %w", file.Path, err)
	}
	dirSheet, err := findSheet(wb, a.cfg.DirectorySheets)
	if err != nil {
		return nil, fmt.Errorf("%s: directory: %w", file.Path, err)
	}

	dir, err := a.sheet(wb, dirSheet, a.cfg.DirectoryColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: directory sheet %q: %w", file.Path, dirSheet, err)
	}
	if !dir.Has(a.cfg.JoinKey) {
		return nil, fmt.Errorf("%w: %s: directory sheet %q has no %s column", domain.ErrStructural, file.Path, dirSheet, a.cfg.JoinKey)
	}

	res := &FileResult{Sheets: 1}
	tx, err := a.sheet(wb, txSheet, a.cfg.TransactionColumns)
	if err != nil {
		res.fail(txSheet, "%v", err)
		return res, nil
	}
	if !tx.Has(a.cfg.JoinKey) {
		res.fail(txSheet, "%v: %s", domain.ErrColumnMissing, a.cfg.JoinKey)
		return res, nil
	}

	joined, unmatched := a.join(tx, dir)
	if unmatched > 0 {
		res.warn("sheet %q: %d rows have no %s entry on sheet %q", txSheet, unmatched, a.cfg.JoinKey, dirSheet)
	}
	res.add(txSheet, joined, countLines(joined, a.opts.NoTransactionWords))
	return res, nil
}

func (a *DirectoryJoinAdapter) sheet(wb Workbook, name string, mapping map[string]string) (*domain.Table, error) {
	grid, err := wb.Rows(name)
	if err != nil {
		return nil, err
	}
	header, status := LocateHeader(grid, a.opts.HeaderProbes)
	if status != HeaderFound {
		return nil, fmt.Errorf("%w: header %s", domain.ErrUnparsableSheet, status)
	}
	return grid.Table(header).Rename(mapping), nil
}

type directoryEntry struct {
	values    map[string]string
	collapsed []string
}

func (a *DirectoryJoinAdapter) join(tx, dir *domain.Table) (*domain.Table, int) {
	entries := make(map[string]*directoryEntry)
	for i := range dir.Rows {
		key := strings.TrimSpace(dir.Value(i, a.cfg.JoinKey))
		if key == "" {
			continue
		}
		e, ok := entries[key]
		if !ok {
			e = &directoryEntry{values: make(map[string]string)}
			entries[key] = e
		}
		for _, col := range dir.Columns {
			v := strings.TrimSpace(dir.Value(i, col))
			if v == "" {
				continue
			}
			if col == a.cfg.CollapseColumn {
				if !contains(e.collapsed, v) {
					e.collapsed = append(e.collapsed, v)
				}
				continue
			}
			if _, ok := e.values[col]; !ok {
				e.values[col] = v
			}
		}
	}

	out := tx.Clone()
	unmatched := 0
	for _, col := range dir.Columns {
		if col == a.cfg.JoinKey {
			continue
		}
		values := out.Column(col)
		if values == nil {
			values = make([]string, out.Len())
		}
		for i := range out.Rows {
			e, ok := entries[strings.TrimSpace(out.Value(i, a.cfg.JoinKey))]
			if !ok || !domain.IsBlank(values[i]) {
				continue
			}
			if col == a.cfg.CollapseColumn {
				values[i] = strings.Join(e.collapsed, a.cfg.Separator)
			} else {
				values[i] = e.values[col]
			}
		}
		out.SetColumn(col, values)
	}
	for i := range out.Rows {
		if _, ok := entries[strings.TrimSpace(out.Value(i, a.cfg.JoinKey))]; !ok {
			unmatched++
		}
	}
	return out, unmatched
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
