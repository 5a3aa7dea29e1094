// Package testutil writes statement fixtures to disk for end-to-end tests.
package testutil

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Sheet is one worksheet of a fixture workbook.
type Sheet struct {
	Name string
	Rows [][]string
}

// Root is a temporary statement root with one directory per institution.
type Root struct {
	Dir string
	t   *testing.T
}

// NewRoot creates an empty statement root.
func NewRoot(t *testing.T) *Root {
	t.Helper()
	return &Root{Dir: t.TempDir(), t: t}
}

func (r *Root) path(institution, file string) string {
	r.t.Helper()
	dir := filepath.Join(r.Dir, institution)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.t.Fatalf("failed to create %s: %v", dir, err)
	}
	return filepath.Join(dir, file)
}

// XLSX writes an xlsx workbook under institution/file.
func (r *Root) XLSX(institution, file string, sheets ...Sheet) string {
	r.t.Helper()
	path := r.path(institution, file)
	if err := os.WriteFile(path, XLSX(r.t, sheets...), 0o600); err != nil {
		r.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// CSV writes rows as comma separated text, GBK encoded when gbk is set.
func (r *Root) CSV(institution, file string, gbk bool, rows ...[]string) string {
	r.t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		r.t.Fatalf("failed to encode csv: %v", err)
	}
	data := buf.Bytes()
	if gbk {
		encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes(data)
		if err != nil {
			r.t.Fatalf("failed to encode gbk: %v", err)
		}
		data = encoded
	}

	path := r.path(institution, file)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		r.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// File writes raw bytes under institution/file.
func (r *Root) File(institution, file string, data []byte) string {
	r.t.Helper()
	path := r.path(institution, file)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		r.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// XLSX encodes sheets as an xlsx workbook.
func XLSX(t *testing.T, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("failed to name sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("failed to add sheet: %v", err)
		}
		for j, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+1)
			if err != nil {
				t.Fatalf("bad cell: %v", err)
			}
			values := make([]any, len(row))
			for k, v := range row {
				values[k] = v
			}
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("failed to write row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to encode xlsx: %v", err)
	}
	return buf.Bytes()
}
