package memory

import (
	"context"
	"errors"
	"testing"
)

func TestWorkbookRows(t *testing.T) {
	wb := NewWorkbook(
		NewSheet("first", []string{"a", "b"}, []string{"1", "2"}),
		NewSheet("second"),
	)

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Fatalf("unexpected sheet names %v", names)
	}

	rows, err := wb.Rows("first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows[0][0] = "changed"
	again, _ := wb.Rows("first")
	if again[0][0] != "a" {
		t.Errorf("expected rows to be copied, got %q", again[0][0])
	}

	if _, err := wb.Rows("missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}

	if err := wb.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := wb.Rows("first"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestReaderOpen(t *testing.T) {
	r := NewReader()
	r.Add("bank/a.xls", NewSheet("Sheet1", []string{"x"}))

	wb, err := r.Open(context.Background(), "bank/a.xls", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := wb.SheetNames(); len(got) != 1 || got[0] != "Sheet1" {
		t.Errorf("unexpected sheets %v", got)
	}

	if _, err := r.Open(context.Background(), "bank/b.xls", nil); !errors.Is(err, ErrWorkbookNotFound) {
		t.Errorf("expected ErrWorkbookNotFound, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Open(ctx, "bank/a.xls", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
