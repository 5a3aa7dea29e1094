// Package memory holds workbooks whose sheets are already decoded into
// cell grids. Readers of formats without random access decode into it.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

var (
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrWorkbookNotFound = errors.New("workbook not found")
	ErrClosed           = errors.New("workbook closed")
)

// Sheet is a named grid.
type Sheet struct {
	Name string
	Rows domain.Grid
}

// NewSheet builds a sheet from literal rows.
func NewSheet(name string, rows ...[]string) Sheet {
	return Sheet{Name: name, Rows: domain.Grid(rows)}
}

// Workbook implements usecase.Workbook over decoded sheets.
type Workbook struct {
	mu     sync.RWMutex
	sheets []Sheet
	closed bool
}

// NewWorkbook creates a workbook; sheet order is kept.
func NewWorkbook(sheets ...Sheet) *Workbook {
	return &Workbook{sheets: sheets}
}

func (w *Workbook) SheetNames() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, len(w.sheets))
	for i, s := range w.sheets {
		names[i] = s.Name
	}
	return names
}

// Rows returns a copy of the sheet's grid.
func (w *Workbook) Rows(sheet string) (domain.Grid, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return nil, ErrClosed
	}
	for _, s := range w.sheets {
		if s.Name != sheet {
			continue
		}
		out := make(domain.Grid, len(s.Rows))
		for i, r := range s.Rows {
			out[i] = append([]string(nil), r...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}

func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// Reader serves registered workbooks by file name, ignoring the file data.
type Reader struct {
	mu    sync.RWMutex
	books map[string][]Sheet
}

// NewReader creates an empty Reader.
func NewReader() *Reader {
	return &Reader{books: make(map[string][]Sheet)}
}

// Add registers the sheets served for name.
func (r *Reader) Add(name string, sheets ...Sheet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[name] = sheets
}

// Open implements usecase.SourceReader. Every call returns a fresh workbook.
func (r *Reader) Open(ctx context.Context, name string, _ []byte) (usecase.Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sheets, ok := r.books[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, name)
	}
	return NewWorkbook(sheets...), nil
}
