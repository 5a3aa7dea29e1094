package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
)

// MergeSplitAmounts fills the amount column from secondary wherever the
// amount is blank or zero. Exports with separate debit and credit columns
// carry each transaction in exactly one of them.
func MergeSplitAmounts(t *domain.Table, secondary string) {
	if secondary == "" || !t.Has(secondary) {
		return
	}
	amounts := t.Column(domain.ColAmount)
	if amounts == nil {
		amounts = make([]string, t.Len())
	}
	for i := range amounts {
		if domain.ParseNumber(amounts[i]).IsBlankOrZero() {
			amounts[i] = t.Value(i, secondary)
		}
	}
	t.SetColumn(domain.ColAmount, amounts)
}

// TypedRows is an institution table with its dates and numbers parsed.
// Rows whose date or amount is malformed are removed.
type TypedRows struct {
	Table    *domain.Table
	Dates    []time.Time
	Amounts  []decimal.Decimal
	Balances []decimal.NullDecimal

	MalformedDates    int
	MalformedAmounts  int
	MalformedBalances int
}

// TypeRows parses the date, amount and balance cells of t.
func TypeRows(t *domain.Table) *TypedRows {
	out := &TypedRows{}
	keep := make(map[int]bool, t.Len())
	for i := range t.Rows {
		date, err := domain.ParseDate(t.Value(i, domain.ColDate))
		if err != nil {
			out.MalformedDates++
			continue
		}
		amount := domain.ParseNumber(t.Value(i, domain.ColAmount))
		if amount.Kind != domain.CellNumber {
			out.MalformedAmounts++
			continue
		}
		var balance decimal.NullDecimal
		switch b := domain.ParseNumber(t.Value(i, domain.ColBalance)); b.Kind {
		case domain.CellNumber:
			balance = decimal.NewNullDecimal(b.Value)
		case domain.CellMalformed:
			out.MalformedBalances++
		}
		keep[i] = true
		out.Dates = append(out.Dates, date)
		out.Amounts = append(out.Amounts, amount.Value)
		out.Balances = append(out.Balances, balance)
	}
	out.Table = t.Filter(func(i int) bool { return keep[i] })
	return out
}

// Records builds the ledger records of the typed rows.
func (r *TypedRows) Records() []domain.Record {
	out := make([]domain.Record, r.Table.Len())
	for i := range out {
		out[i] = domain.NewRecord(r.Table, i, r.Dates[i], r.Amounts[i], r.Balances[i])
	}
	return out
}

// SignInput carries what a sign strategy may look at.
type SignInput struct {
	Rows            *TypedRows
	SecondaryColumn string
	OutflowTokens   []string
}

// SignStrategy negates the amounts of outflow rows.
type SignStrategy struct {
	Name    string
	Applies func(in SignInput) bool
	Apply   func(in SignInput) error
}

// SignStrategies lists the strategies in order of preference.
var SignStrategies = []SignStrategy{
	{Name: "flag", Applies: flagApplies, Apply: flagApply},
	{Name: "secondary", Applies: secondaryApplies, Apply: secondaryApply},
	{Name: "balance", Applies: balanceApplies, Apply: balanceApply},
}

// DeriveSigns applies the first applicable strategy and returns its name,
// or "" when none applies.
func DeriveSigns(in SignInput) (string, error) {
	for _, s := range SignStrategies {
		if !s.Applies(in) {
			continue
		}
		if err := s.Apply(in); err != nil {
			return s.Name, fmt.Errorf("sign strategy %s: %w", s.Name, err)
		}
		return s.Name, nil
	}
	return "", nil
}

func flagApplies(in SignInput) bool {
	return in.Rows.Table.Has(domain.ColFlag)
}

func flagApply(in SignInput) error {
	outflow := make(map[string]bool, len(in.OutflowTokens))
	for _, tok := range in.OutflowTokens {
		outflow[tok] = true
	}
	for i := range in.Rows.Amounts {
		if outflow[strings.TrimSpace(in.Rows.Table.Value(i, domain.ColFlag))] {
			in.Rows.Amounts[i] = in.Rows.Amounts[i].Neg()
		}
	}
	return nil
}

func secondaryApplies(in SignInput) bool {
	return in.SecondaryColumn != "" && in.Rows.Table.Has(in.SecondaryColumn)
}

// secondaryApply treats the secondary column as the inflow column: a row
// without an inflow is an outflow.
func secondaryApply(in SignInput) error {
	for i := range in.Rows.Amounts {
		if domain.ParseNumber(in.Rows.Table.Value(i, in.SecondaryColumn)).IsBlankOrZero() {
			in.Rows.Amounts[i] = in.Rows.Amounts[i].Neg()
		}
	}
	return nil
}

func balanceApplies(in SignInput) bool {
	for _, b := range in.Rows.Balances {
		if b.Valid {
			return true
		}
	}
	return false
}

// balanceApply marks a row as an outflow when the balance decreased against
// the previous transaction of the same account. Each account's rows must be
// sorted by date, ascending or descending; nothing is changed otherwise.
func balanceApply(in SignInput) error {
	r := in.Rows
	var order []string
	groups := make(map[string][]int)
	for i := range r.Amounts {
		k := accountKey(r.Table, i)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	descending := make(map[string]bool, len(groups))
	for _, k := range order {
		desc, ok := dateOrder(r.Dates, groups[k])
		if !ok {
			return fmt.Errorf("%w: account %q", domain.ErrUnorderedBalance, strings.Trim(strings.ReplaceAll(k, "\x00", " "), " "))
		}
		descending[k] = desc
	}

	for _, k := range order {
		rows := groups[k]
		if descending[k] {
			rows = reversed(rows)
		}
		for j := 1; j < len(rows); j++ {
			cur, prev := r.Balances[rows[j]], r.Balances[rows[j-1]]
			if !cur.Valid || !prev.Valid {
				continue
			}
			if cur.Decimal.LessThan(prev.Decimal) {
				r.Amounts[rows[j]] = r.Amounts[rows[j]].Neg()
			}
		}
	}
	return nil
}

// dateOrder reports whether the rows are sorted descending, and false for ok
// when they are sorted in neither direction.
func dateOrder(dates []time.Time, rows []int) (descending, ok bool) {
	asc, desc := true, true
	for j := 1; j < len(rows); j++ {
		prev, cur := dates[rows[j-1]], dates[rows[j]]
		if cur.Before(prev) {
			asc = false
		}
		if cur.After(prev) {
			desc = false
		}
	}
	switch {
	case asc:
		return false, true
	case desc:
		return true, true
	default:
		return false, false
	}
}

func reversed(rows []int) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}
