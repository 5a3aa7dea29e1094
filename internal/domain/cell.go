package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CellKind classifies a numeric-looking cell.
type CellKind int

const (
	CellBlank CellKind = iota
	CellNumber
	CellMalformed
)

// NumberCell is the total classification of a cell that should hold a number.
type NumberCell struct {
	Kind  CellKind
	Value decimal.Decimal
	Raw   string
}

// IsBlankOrZero reports a blank cell or a number equal to zero. Malformed
// cells are neither.
func (c NumberCell) IsBlankOrZero() bool {
	return c.Kind == CellBlank || (c.Kind == CellNumber && c.Value.IsZero())
}

var blankTokens = map[string]bool{
	"":    true,
	"-":   true,
	"--":  true,
	"—":   true,
	"nan": true,
	"NaN": true,
}

var numberReplacer = strings.NewReplacer(
	",", "",
	"，", "",
	" ", "",
	"\u00a0", "",
	"¥", "",
	"￥", "",
	"$", "",
	"元", "",
)

// ParseNumber classifies s as a number, a blank, or malformed. Thousands
// separators, currency marks, parentheses and a trailing minus are accepted.
func ParseNumber(s string) NumberCell {
	raw := s
	s = strings.TrimSpace(s)
	if blankTokens[s] {
		return NumberCell{Kind: CellBlank, Raw: raw}
	}

	s = numberReplacer.Replace(s)
	negative := false
	switch {
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		negative = true
		s = s[1 : len(s)-1]
	case strings.HasPrefix(s, "（") && strings.HasSuffix(s, "）"):
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "（"), "）")
	case len(s) > 1 && strings.HasSuffix(s, "-"):
		negative = true
		s = s[:len(s)-1]
	}
	s = strings.TrimPrefix(s, "+")

	v, err := decimal.NewFromString(s)
	if err != nil {
		return NumberCell{Kind: CellMalformed, Raw: raw}
	}
	if negative {
		v = v.Neg()
	}
	return NumberCell{Kind: CellNumber, Value: v, Raw: raw}
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
	"2006.1.2",
	"20060102150405",
	"20060102 150405",
	"20060102 15:04:05",
	"20060102",
	"2006年1月2日 15:04:05",
	"2006年1月2日",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/06",
}

// excelEpoch is day zero of the 1900 date system as Excel counts it.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// ParseDate parses a transaction date in the layouts banks export, including
// spreadsheet serial numbers. Blank cells and unknown layouts wrap ErrMalformedCell.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: blank date", ErrMalformedCell)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 20000 && f < 80000 {
		days := math.Floor(f)
		secs := math.Round((f - days) * 86400)
		return excelEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second), nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrMalformedCell, s)
}
