// Package spreadsheet decodes statement files: xlsx through excelize,
// legacy BIFF .xls through extrame/xls and delimited text in UTF-8 or GBK.
package spreadsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/iho/bankledger/internal/adapter/source/memory"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// ErrUnsupportedFormat is returned for files that are neither workbooks nor
// delimited text.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is a detected file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLS
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

var (
	zipMagic  = []byte("PK\x03\x04")
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat checks magic bytes first and falls back to the extension.
func DetectFormat(name string, data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, ole2Magic):
		return FormatXLS
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv", ".txt":
		return FormatCSV
	}
	return FormatUnknown
}

// Reader implements usecase.SourceReader.
type Reader struct {
	// Charset passed to the xls decoder for strings stored in code pages.
	Charset string
}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{Charset: "utf-8"}
}

// Open decodes data according to its detected format.
func (r *Reader) Open(ctx context.Context, name string, data []byte) (usecase.Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch format := DetectFormat(name, data); format {
	case FormatXLSX:
		return openXLSX(data)
	case FormatXLS:
		return r.openXLS(data)
	case FormatCSV:
		return openCSV(name, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// xlsxWorkbook reads sheets lazily and keeps every sheet read once.
type xlsxWorkbook struct {
	mu   sync.Mutex
	f    *excelize.File
	rows map[string]domain.Grid
}

func openXLSX(data []byte) (usecase.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	return &xlsxWorkbook{f: f, rows: make(map[string]domain.Grid)}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) (domain.Grid, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if g, ok := w.rows[sheet]; ok {
		return g, nil
	}
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	g := domain.Grid(rows)
	w.rows[sheet] = g
	return g, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

func (r *Reader) openXLS(data []byte) (wb usecase.Workbook, err error) {
	defer func() {
		if p := recover(); p != nil {
			wb, err = nil, fmt.Errorf("failed to open xls: %v", p)
		}
	}()

	book, err := xls.OpenReader(bytes.NewReader(data), r.Charset)
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}

	sheets := make([]memory.Sheet, 0, book.NumSheets())
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		sheets = append(sheets, memory.Sheet{Name: ws.Name, Rows: xlsGrid(ws)})
	}
	return memory.NewWorkbook(sheets...), nil
}

func xlsGrid(ws *xls.WorkSheet) domain.Grid {
	g := make(domain.Grid, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			g = append(g, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		g = append(g, trimTrailing(cells))
	}
	for len(g) > 0 && len(g[len(g)-1]) == 0 {
		g = g[:len(g)-1]
	}
	return g
}

func openCSV(name string, data []byte) (usecase.Workbook, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode csv as gbk: %w", err)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	if strings.Count(firstLine(data), "\t") > strings.Count(firstLine(data), ",") {
		r.Comma = '\t'
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return memory.NewWorkbook(memory.Sheet{Name: domain.FileStem(name), Rows: domain.Grid(records)}), nil
}

func firstLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return string(data[:i])
	}
	return string(data)
}

func trimTrailing(cells []string) []string {
	for len(cells) > 0 && domain.IsBlank(cells[len(cells)-1]) {
		cells = cells[:len(cells)-1]
	}
	return cells
}
