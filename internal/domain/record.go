package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one transaction in the canonical ledger schema.
type Record struct {
	Bank                string
	Holder              string
	Account             string
	Card                string
	Date                time.Time
	Flag                string
	Currency            string
	Amount              decimal.Decimal
	Balance             decimal.NullDecimal
	Type                string
	Remarks             string
	Memo                string
	Postscript          string
	CounterpartyName    string
	CounterpartyAccount string
	CounterpartyBank    string
	Location            string
	Region              string
	Branch              string
	Teller              string
	ForeignCode         string
	Code                string
	Agent               string
	AgentID             string
	Other               string
}

// NewRecord builds a record from row i of t with already typed values.
// String cells are trimmed.
func NewRecord(t *Table, i int, date time.Time, amount decimal.Decimal, balance decimal.NullDecimal) Record {
	v := func(col string) string { return strings.TrimSpace(t.Value(i, col)) }
	return Record{
		Bank:                v(ColBank),
		Holder:              v(ColHolder),
		Account:             v(ColAccount),
		Card:                v(ColCard),
		Date:                date,
		Flag:                v(ColFlag),
		Currency:            v(ColCurrency),
		Amount:              amount,
		Balance:             balance,
		Type:                v(ColType),
		Remarks:             v(ColRemarks),
		Memo:                v(ColMemo),
		Postscript:          v(ColPostscript),
		CounterpartyName:    v(ColCounterpartyName),
		CounterpartyAccount: v(ColCounterpartyAccount),
		CounterpartyBank:    v(ColCounterpartyBank),
		Location:            v(ColLocation),
		Region:              v(ColRegion),
		Branch:              v(ColBranch),
		Teller:              v(ColTeller),
		ForeignCode:         v(ColForeignCode),
		Code:                v(ColCode),
		Agent:               v(ColAgent),
		AgentID:             v(ColAgentID),
		Other:               v(ColOther),
	}
}

// Value renders the record's cell for a canonical column.
func (r Record) Value(col string) string {
	switch col {
	case ColBank:
		return r.Bank
	case ColHolder:
		return r.Holder
	case ColAccount:
		return r.Account
	case ColCard:
		return r.Card
	case ColDate:
		return FormatDate(r.Date)
	case ColFlag:
		return r.Flag
	case ColCurrency:
		return r.Currency
	case ColAmount:
		return r.Amount.String()
	case ColAbsAmount:
		return r.Amount.Abs().String()
	case ColBalance:
		if !r.Balance.Valid {
			return ""
		}
		return r.Balance.Decimal.String()
	case ColType:
		return r.Type
	case ColRemarks:
		return r.Remarks
	case ColMemo:
		return r.Memo
	case ColPostscript:
		return r.Postscript
	case ColCounterpartyName:
		return r.CounterpartyName
	case ColCounterpartyAccount:
		return r.CounterpartyAccount
	case ColCounterpartyBank:
		return r.CounterpartyBank
	case ColLocation:
		return r.Location
	case ColRegion:
		return r.Region
	case ColBranch:
		return r.Branch
	case ColTeller:
		return r.Teller
	case ColForeignCode:
		return r.ForeignCode
	case ColCode:
		return r.Code
	case ColAgent:
		return r.Agent
	case ColAgentID:
		return r.AgentID
	case ColOther:
		return r.Other
	}
	return ""
}

// FormatDate renders a transaction date, with the time only when it is set.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
