package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func TestWriteLedger(t *testing.T) {
	verdict := domain.NewVerdict("甲银行")
	verdict.Warn("no negative amounts")
	res := &usecase.Result{
		Ledger: usecase.NewLedger([]domain.Record{{
			Bank:   "甲银行",
			Holder: "张三",
			Date:   time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("-12.50"),
		}}),
		Reports:     []*usecase.InstitutionReport{{Institution: "甲银行", Parsed: 1, Expected: 1, Verdict: verdict}},
		Unsupported: []string{"乙银行"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{LedgerSheet, VerdictSheet}, f.GetSheetList())

	rows, err := f.GetRows(LedgerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"银行名称", "户名", "交易日期", "交易金额", "金额绝对值"}, rows[0])
	assert.Equal(t, []string{"甲银行", "张三", "2020-01-02", "-12.5", "12.5"}, rows[1])

	verdicts, err := f.GetRows(VerdictSheet)
	require.NoError(t, err)
	require.Len(t, verdicts, 3)
	assert.Equal(t, "FAIL", verdicts[1][1])
	assert.Equal(t, "no negative amounts", verdicts[1][4])
	assert.Equal(t, []string{"乙银行", "UNSUPPORTED"}, verdicts[2][:2])
}
