package usecase_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

var validatorColumns = []string{
	domain.ColBank, domain.ColHolder, domain.ColAccount, domain.ColFlag,
	domain.ColDate, domain.ColAmount, domain.ColBalance,
}

// tenRows returns ten complete rows, the even ones outflows.
func tenRows() [][]string {
	rows := make([][]string, 10)
	for i := range rows {
		flag := "贷"
		if i%2 == 0 {
			flag = "借"
		}
		rows[i] = row("X", "张三", "A1", flag, fmt.Sprintf("2020-01-%02d", i+1), "10", "100")
	}
	return rows
}

func typedRows(rows [][]string) *usecase.TypedRows {
	r := usecase.TypeRows(domain.NewTable(validatorColumns, rows...))
	_, _ = usecase.DeriveSigns(usecase.SignInput{Rows: r, OutflowTokens: usecase.DefaultOptions().OutflowTokens})
	return r
}

func TestValidator_Validate(t *testing.T) {
	profile := domain.MustProfile("X", domain.WithNeedColumns())
	v := usecase.NewValidator(usecase.DefaultOptions().HolderBoilerplate)

	tests := []struct {
		name   string
		input  func() usecase.ValidationInput
		reason []string
	}{
		{
			name: "clean institution passes",
			input: func() usecase.ValidationInput {
				return usecase.ValidationInput{Profile: profile, Rows: typedRows(tenRows()), Expected: 10}
			},
		},
		{
			name: "one blank balance",
			input: func() usecase.ValidationInput {
				rows := tenRows()
				rows[3][6] = ""
				return usecase.ValidationInput{Profile: profile, Rows: typedRows(rows), Expected: 10}
			},
			reason: []string{"blank values in check columns: 账户余额:1"},
		},
		{
			name: "rows without account or card",
			input: func() usecase.ValidationInput {
				rows := tenRows()
				rows[0][2], rows[1][2] = "", " "
				return usecase.ValidationInput{Profile: profile, Rows: typedRows(rows), Expected: 10}
			},
			reason: []string{"blank values in check columns: 账号或卡号:2"},
		},
		{
			name: "unparsed rows",
			input: func() usecase.ValidationInput {
				return usecase.ValidationInput{Profile: profile, Rows: typedRows(tenRows()), Expected: 12}
			},
			reason: []string{"unparsed rows remain: parsed 10 of 12"},
		},
		{
			name: "boilerplate holder",
			input: func() usecase.ValidationInput {
				rows := tenRows()
				rows[0][1] = "张三交易明细"
				return usecase.ValidationInput{Profile: profile, Rows: typedRows(rows), Expected: 10}
			},
			reason: []string{`holder name looks like boilerplate: "张三交易明细"`},
		},
		{
			name: "failed files and sheets",
			input: func() usecase.ValidationInput {
				return usecase.ValidationInput{
					Profile:      profile,
					Rows:         typedRows(tenRows()),
					Expected:     10,
					FailedFiles:  []string{"X/a.xls"},
					FailedSheets: []string{"X/b.xls#Sheet2"},
				}
			},
			reason: []string{"failed files: X/a.xls", "failed sheets: X/b.xls#Sheet2"},
		},
		{
			name: "missing needed columns",
			input: func() usecase.ValidationInput {
				p := domain.MustProfile("X", domain.WithNeedColumns(domain.ColMemo, domain.ColAccount, domain.ColBranch))
				return usecase.ValidationInput{Profile: p, Rows: typedRows(tenRows()), Expected: 10}
			},
			reason: []string{"missing columns: 摘要, 交易网点"},
		},
		{
			name: "malformed cells",
			input: func() usecase.ValidationInput {
				rows := tenRows()
				rows[1][4] = "someday"
				rows[2][6] = "many"
				return usecase.ValidationInput{Profile: profile, Rows: typedRows(rows), Expected: 9}
			},
			reason: []string{"malformed cells: 交易日期:1, 交易金额:0, 账户余额:1"},
		},
		{
			name: "sign derivation failed and nothing negative",
			input: func() usecase.ValidationInput {
				rows := usecase.TypeRows(domain.NewTable(validatorColumns, tenRows()...))
				return usecase.ValidationInput{
					Profile:  profile,
					Rows:     rows,
					Expected: 10,
					SignErr:  fmt.Errorf("sign strategy balance: %w", domain.ErrUnorderedBalance),
				}
			},
			reason: []string{
				"amount signs not derived: sign strategy balance: " + domain.ErrUnorderedBalance.Error(),
				"no negative amounts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := v.Validate(tt.input())
			if verdict.Institution != "X" {
				t.Errorf("expected institution X, got %q", verdict.Institution)
			}
			if len(tt.reason) == 0 {
				if !verdict.Passed() {
					t.Fatalf("expected a passing verdict, got %v", verdict.Reasons)
				}
				return
			}
			if !verdict.HasMistakes {
				t.Fatalf("expected mistakes, got none")
			}
			if !reflect.DeepEqual(verdict.Reasons, tt.reason) {
				t.Errorf("expected reasons %q, got %q", tt.reason, verdict.Reasons)
			}
		})
	}
}

func TestValidator_ReasonsCarrySentinelText(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", domain.ErrUnorderedBalance)
	verdict := usecase.NewValidator(nil).Validate(usecase.ValidationInput{
		Profile: domain.MustProfile("X", domain.WithNeedColumns()),
		Rows:    typedRows(tenRows()),
		SignErr: err,
	})
	if !strings.Contains(strings.Join(verdict.Reasons, "\n"), "not ordered by date") {
		t.Errorf("expected the order problem to be named, got %v", verdict.Reasons)
	}
}
