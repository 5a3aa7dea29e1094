package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iho/bankledger/internal/domain"
)

// ValidationInput is everything known about one institution after assembly.
type ValidationInput struct {
	Profile *domain.Profile
	Rows    *TypedRows
	// Expected is the row count seen during adaptation after footer reconciliation.
	Expected     int
	FailedSheets []string
	FailedFiles  []string
	SignErr      error
}

// Validator checks an institution's rows for signs of a bad parse.
type Validator struct {
	boilerplate []string
}

// NewValidator creates a Validator flagging holder names that contain any
// of the boilerplate fragments.
func NewValidator(boilerplate []string) *Validator {
	return &Validator{boilerplate: boilerplate}
}

// Validate returns the institution's verdict.
func (v *Validator) Validate(in ValidationInput) *domain.Verdict {
	verdict := domain.NewVerdict(in.Profile.Name())
	t := in.Rows.Table

	if len(in.FailedFiles) > 0 {
		verdict.Warn("failed files: %s", strings.Join(in.FailedFiles, ", "))
	}
	if len(in.FailedSheets) > 0 {
		verdict.Warn("failed sheets: %s", strings.Join(in.FailedSheets, ", "))
	}

	for _, holder := range distinct(t.Column(domain.ColHolder)) {
		for _, frag := range v.boilerplate {
			if strings.Contains(holder, frag) {
				verdict.Warn("holder name looks like boilerplate: %q", holder)
				break
			}
		}
	}

	if parsed := t.Len(); parsed < in.Expected {
		verdict.Warn("unparsed rows remain: parsed %d of %d", parsed, in.Expected)
	}

	if blanks := blankCounts(t, in.Profile.CheckColumns()); blanks != "" {
		verdict.Warn("blank values in check columns: %s", blanks)
	}

	var missing []string
	for _, col := range in.Profile.NeedColumns() {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		verdict.Warn("missing columns: %s", strings.Join(missing, ", "))
	}

	if r := in.Rows; r.MalformedDates+r.MalformedAmounts+r.MalformedBalances > 0 {
		verdict.Warn("malformed cells: %s:%d, %s:%d, %s:%d",
			domain.ColDate, r.MalformedDates, domain.ColAmount, r.MalformedAmounts, domain.ColBalance, r.MalformedBalances)
	}

	if in.SignErr != nil {
		verdict.Warn("amount signs not derived: %v", in.SignErr)
	}

	negatives := 0
	for _, a := range in.Rows.Amounts {
		if a.IsNegative() {
			negatives++
		}
	}
	if negatives == 0 {
		verdict.Warn("no negative amounts")
	}
	return verdict
}

// blankCounts renders "col:n" for every check column with blank cells,
// plus rows lacking both an account and a card number.
func blankCounts(t *domain.Table, cols []string) string {
	var parts []string
	for _, col := range cols {
		n := 0
		for i := range t.Rows {
			if domain.IsBlank(t.Value(i, col)) {
				n++
			}
		}
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", col, n))
		}
	}

	n := 0
	for i := range t.Rows {
		if domain.IsBlank(t.Value(i, domain.ColAccount)) && domain.IsBlank(t.Value(i, domain.ColCard)) {
			n++
		}
	}
	if n > 0 {
		parts = append(parts, fmt.Sprintf("%s:%d", domain.ColAccountOrCard, n))
	}
	return strings.Join(parts, ", ")
}

func distinct(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
