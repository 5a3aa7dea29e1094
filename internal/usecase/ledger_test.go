package usecase_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func record(bank, date, amount string) domain.Record {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.Record{Bank: bank, Date: d, Amount: decimal.RequireFromString(amount)}
}

func TestNewLedger(t *testing.T) {
	a := []domain.Record{record("A", "2020-01-03", "-5"), record("A", "2020-01-01", "1")}
	b := []domain.Record{record("B", "2020-01-03", "2"), record("B", "2020-01-02", "3")}
	b[0].Memo = "工资"

	l := usecase.NewLedger(a, b)
	if l.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", l.Len())
	}

	wantCols := []string{domain.ColBank, domain.ColDate, domain.ColAmount, domain.ColMemo, domain.ColAbsAmount}
	if !reflect.DeepEqual(l.Columns, wantCols) {
		t.Fatalf("expected columns %v, got %v", wantCols, l.Columns)
	}

	want := [][]string{
		{"A", "2020-01-01", "1", "", "1"},
		{"B", "2020-01-02", "3", "", "3"},
		{"A", "2020-01-03", "-5", "", "5"},
		{"B", "2020-01-03", "2", "工资", "2"},
	}
	if got := l.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected rows %v, got %v", want, got)
	}
}

func TestNewLedger_Empty(t *testing.T) {
	l := usecase.NewLedger()
	if l.Len() != 0 || l.Columns != nil || len(l.Rows()) != 0 {
		t.Fatalf("expected an empty ledger, got %+v", l)
	}
}
