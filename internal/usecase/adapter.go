package usecase

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/iho/bankledger/internal/domain"
)

// SourceFile is one opened statement file of an institution.
type SourceFile struct {
	// Path is slash-separated and relative to the run root.
	Path        string
	Institution string
	Workbook    Workbook
}

// Stem returns the file name without directory and extension.
func (f SourceFile) Stem() string {
	return domain.FileStem(f.Path)
}

// DirName returns the name of the directory holding the file.
func (f SourceFile) DirName() string {
	return path.Base(path.Dir(f.Path))
}

// FileResult is what an adapter extracted from one file.
type FileResult struct {
	Tables       []*domain.Table `json:"tables"`
	Sheets       int             `json:"sheets"`
	ParsedSheets []string        `json:"parsed_sheets"`
	FailedSheets []string        `json:"failed_sheets"`
	// Lines counts the data rows seen, sentinel rows excluded.
	Lines    int      `json:"lines"`
	Warnings []string `json:"warnings"`
}

func (r *FileResult) add(sheet string, t *domain.Table, lines int) {
	r.Tables = append(r.Tables, t)
	r.ParsedSheets = append(r.ParsedSheets, sheet)
	r.Lines += lines
}

func (r *FileResult) fail(sheet, format string, args ...any) {
	r.FailedSheets = append(r.FailedSheets, sheet)
	r.warn("sheet %q: "+format, append([]any{sheet}, args...)...)
}

func (r *FileResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// SourceAdapter turns one opened file into tables with canonical column names.
type SourceAdapter interface {
	Parse(ctx context.Context, file SourceFile) (*FileResult, error)
}

// AdapterFactory builds the adapter serving a profile.
type AdapterFactory func(p *domain.Profile, opts Options) (SourceAdapter, error)

// AdapterRegistry maps special handler ids to adapter factories. Profiles
// without a handler are served by the generic adapter.
type AdapterRegistry struct {
	mu        sync.RWMutex
	factories map[string]AdapterFactory
}

// NewAdapterRegistry creates a registry with the built-in handlers.
func NewAdapterRegistry() *AdapterRegistry {
	r := &AdapterRegistry{factories: make(map[string]AdapterFactory)}
	registerBuiltinHandlers(r)
	return r
}

// Register adds or replaces the factory for a handler id.
func (r *AdapterRegistry) Register(id string, f AdapterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = f
}

// Handlers returns the registered handler ids in sorted order.
func (r *AdapterRegistry) Handlers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve returns the adapter for p.
func (r *AdapterRegistry) Resolve(p *domain.Profile, opts Options) (SourceAdapter, error) {
	opts = opts.withDefaults()
	if !p.IsSpecial() {
		return NewGenericAdapter(p, opts), nil
	}
	r.mu.RLock()
	f, ok := r.factories[p.Handler()]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s refers to unknown handler %q", domain.ErrInvalidProfile, p.Name(), p.Handler())
	}
	return f(p, opts)
}

// findSheet returns the first alias present in the workbook.
func findSheet(wb Workbook, aliases []string) (string, error) {
	names := wb.SheetNames()
	for _, alias := range aliases {
		for _, name := range names {
			if strings.TrimSpace(name) == alias {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: none of sheets %v found, workbook has %v", domain.ErrStructural, aliases, names)
}

// countLines counts rows whose first cell is not a no-transaction sentinel.
func countLines(t *domain.Table, sentinels []string) int {
	n := 0
	for _, row := range t.Rows {
		if len(row) > 0 && isSentinel(row[0], sentinels) {
			continue
		}
		n++
	}
	return n
}

func isSentinel(cell string, sentinels []string) bool {
	cell = strings.TrimSpace(cell)
	for _, s := range sentinels {
		if s != "" && strings.Contains(cell, s) {
			return true
		}
	}
	return false
}

func allBlank(values []string) bool {
	for _, v := range values {
		if !domain.IsBlank(v) {
			return false
		}
	}
	return true
}
