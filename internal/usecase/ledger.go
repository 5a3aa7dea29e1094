package usecase

import (
	"sort"

	"github.com/iho/bankledger/internal/domain"
)

// Ledger is the unified output of a run.
type Ledger struct {
	Columns []string
	Records []domain.Record
}

// NewLedger concatenates the record sets in order, sorts the records by date
// (stable) and keeps the canonical columns holding at least one value,
// followed by the absolute-amount column.
func NewLedger(sets ...[]domain.Record) *Ledger {
	var records []domain.Record
	for _, s := range sets {
		records = append(records, s...)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	l := &Ledger{Records: records}
	if len(records) == 0 {
		return l
	}
	for _, col := range domain.CanonicalColumns {
		for _, r := range records {
			if r.Value(col) != "" {
				l.Columns = append(l.Columns, col)
				break
			}
		}
	}
	l.Columns = append(l.Columns, domain.ColAbsAmount)
	return l
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.Records)
}

// Rows renders the records as strings in column order.
func (l *Ledger) Rows() [][]string {
	out := make([][]string, len(l.Records))
	for i, r := range l.Records {
		row := make([]string, len(l.Columns))
		for j, col := range l.Columns {
			row[j] = r.Value(col)
		}
		out[i] = row
	}
	return out
}
