package usecase_test

import (
	"errors"
	"testing"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func amounts(r *usecase.TypedRows) []string {
	out := make([]string, len(r.Amounts))
	for i, a := range r.Amounts {
		out[i] = a.String()
	}
	return out
}

func assertAmounts(t *testing.T, r *usecase.TypedRows, want ...string) {
	t.Helper()
	got := amounts(r)
	if len(got) != len(want) {
		t.Fatalf("expected %d amounts, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected amounts %v, got %v", want, got)
		}
	}
}

func TestMergeSplitAmounts(t *testing.T) {
	tbl := domain.NewTable([]string{domain.ColAmount, "贷方"},
		row("100", ""),
		row("0", "20"),
		row("", "30"),
		row("", ""),
		row("abc", "40"),
	)
	usecase.MergeSplitAmounts(tbl, "贷方")

	want := []string{"100", "20", "30", "", "abc"}
	for i, w := range want {
		if got := tbl.Value(i, domain.ColAmount); got != w {
			t.Errorf("row %d: expected %q, got %q", i, w, got)
		}
	}

	untouched := domain.NewTable([]string{domain.ColAmount}, row(""))
	usecase.MergeSplitAmounts(untouched, "贷方")
	if untouched.Value(0, domain.ColAmount) != "" {
		t.Errorf("expected no change without the secondary column")
	}
}

func TestTypeRows(t *testing.T) {
	tbl := domain.NewTable([]string{domain.ColDate, domain.ColAmount, domain.ColBalance},
		row("2020-01-01", "1,000.50", "2000"),
		row("not a date", "1", "1"),
		row("2020-01-02", "n/a", "1"),
		row("2020-01-03", "(20)", "oops"),
		row("2020-01-04", "5", ""),
	)
	rows := usecase.TypeRows(tbl)

	if rows.Table.Len() != 3 {
		t.Fatalf("expected 3 typed rows, got %d", rows.Table.Len())
	}
	if rows.MalformedDates != 1 || rows.MalformedAmounts != 1 || rows.MalformedBalances != 1 {
		t.Errorf("unexpected malformed counters: %d %d %d", rows.MalformedDates, rows.MalformedAmounts, rows.MalformedBalances)
	}
	assertAmounts(t, rows, "1000.5", "-20", "5")
	if !rows.Balances[0].Valid || rows.Balances[1].Valid || rows.Balances[2].Valid {
		t.Errorf("unexpected balance validity: %+v", rows.Balances)
	}

	recs := rows.Records()
	if len(recs) != 3 || recs[1].Value(domain.ColDate) != "2020-01-03" {
		t.Errorf("unexpected records: %+v", recs)
	}
}

func TestDeriveSigns(t *testing.T) {
	tokens := usecase.DefaultOptions().OutflowTokens

	tests := []struct {
		name      string
		columns   []string
		rows      [][]string
		secondary string
		tokens    []string
		strategy  string
		want      []string
	}{
		{
			name:     "flag",
			columns:  []string{domain.ColDate, domain.ColAmount, domain.ColFlag, domain.ColBalance},
			rows:     [][]string{row("2020-01-01", "100", "借", "1"), row("2020-01-02", "100", "贷", "0"), row("2020-01-03", "7", " D ", "")},
			tokens:   tokens,
			strategy: "flag",
			want:     []string{"-100", "100", "-7"},
		},
		{
			name:     "flag with custom tokens",
			columns:  []string{domain.ColDate, domain.ColAmount, domain.ColFlag},
			rows:     [][]string{row("2020-01-01", "100", "debit"), row("2020-01-02", "100", "credit")},
			tokens:   []string{"debit"},
			strategy: "flag",
			want:     []string{"-100", "100"},
		},
		{
			name:      "secondary column",
			columns:   []string{domain.ColDate, domain.ColAmount, "贷方"},
			rows:      [][]string{row("2020-01-01", "100", ""), row("2020-01-02", "50", "50")},
			secondary: "贷方",
			tokens:    tokens,
			strategy:  "secondary",
			want:      []string{"-100", "50"},
		},
		{
			name:    "balance ascending",
			columns: []string{domain.ColDate, domain.ColAmount, domain.ColBalance, domain.ColAccount},
			rows: [][]string{
				row("2020-01-01", "100", "1000", "A"),
				row("2020-01-02", "100", "900", "A"),
				row("2020-01-03", "200", "1100", "A"),
				row("2020-01-01", "5", "5", "B"),
				row("2020-01-02", "5", "0", "B"),
			},
			tokens:   tokens,
			strategy: "balance",
			want:     []string{"100", "-100", "200", "5", "-5"},
		},
		{
			name:    "balance descending",
			columns: []string{domain.ColDate, domain.ColAmount, domain.ColBalance},
			rows: [][]string{
				row("2020-01-03", "200", "1100"),
				row("2020-01-02", "100", "900"),
				row("2020-01-01", "100", "1000"),
			},
			tokens:   tokens,
			strategy: "balance",
			want:     []string{"200", "-100", "100"},
		},
		{
			name:     "nothing to derive from",
			columns:  []string{domain.ColDate, domain.ColAmount},
			rows:     [][]string{row("2020-01-01", "100")},
			tokens:   tokens,
			strategy: "",
			want:     []string{"100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := usecase.TypeRows(domain.NewTable(tt.columns, tt.rows...))
			got, err := usecase.DeriveSigns(usecase.SignInput{
				Rows:            rows,
				SecondaryColumn: tt.secondary,
				OutflowTokens:   tt.tokens,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.strategy {
				t.Errorf("expected strategy %q, got %q", tt.strategy, got)
			}
			assertAmounts(t, rows, tt.want...)
		})
	}
}

func TestDeriveSigns_UnorderedBalance(t *testing.T) {
	rows := usecase.TypeRows(domain.NewTable(
		[]string{domain.ColDate, domain.ColAmount, domain.ColBalance, domain.ColAccount},
		row("2020-01-01", "100", "1000", "A"),
		row("2020-01-03", "100", "900", "A"),
		row("2020-01-02", "100", "800", "A"),
	))

	got, err := usecase.DeriveSigns(usecase.SignInput{Rows: rows})
	if !errors.Is(err, domain.ErrUnorderedBalance) {
		t.Fatalf("expected ErrUnorderedBalance, got %v", err)
	}
	if got != "balance" {
		t.Errorf("expected the balance strategy to be reported, got %q", got)
	}
	assertAmounts(t, rows, "100", "100", "100")
}
