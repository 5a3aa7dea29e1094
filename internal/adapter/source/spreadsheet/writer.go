package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iho/bankledger/internal/usecase"
)

const (
	LedgerSheet  = "ledger"
	VerdictSheet = "verdicts"
)

// WriteLedger writes the ledger and the institution verdicts as an xlsx
// workbook with one sheet each.
func WriteLedger(w io.Writer, res *usecase.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRows(f, LedgerSheet, res.Ledger.Columns, res.Ledger.Rows()); err != nil {
		return err
	}

	if _, err := f.NewSheet(VerdictSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	header := []string{"institution", "result", "parsed", "expected", "reasons"}
	rows := make([][]string, 0, len(res.Reports))
	for _, rep := range res.Reports {
		result := "PASS"
		if rep.Verdict.HasMistakes {
			result = "FAIL"
		}
		rows = append(rows, []string{
			rep.Institution,
			result,
			fmt.Sprint(rep.Parsed),
			fmt.Sprint(rep.Expected),
			strings.Join(rep.Verdict.Reasons, "; "),
		})
	}
	for _, name := range res.Unsupported {
		rows = append(rows, []string{name, "UNSUPPORTED", "", "", ""})
	}
	if err := writeRows(f, VerdictSheet, header, rows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]string) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream %s: %w", sheet, err)
	}
	if err := sw.SetRow("A1", toAny(header)); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toAny(row)); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return sw.Flush()
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
