package domain

// Canonical ledger column names. Profiles map institution headers onto these.
const (
	ColBank                = "银行名称"
	ColHolder              = "户名"
	ColAccount             = "账号"
	ColCard                = "卡号"
	ColDate                = "交易日期"
	ColFlag                = "借贷标志"
	ColCurrency            = "币种"
	ColAmount              = "交易金额"
	ColBalance             = "账户余额"
	ColType                = "交易方式"
	ColRemarks             = "备注"
	ColMemo                = "摘要"
	ColPostscript          = "附言"
	ColCounterpartyName    = "对方户名"
	ColCounterpartyAccount = "对方账号"
	ColCounterpartyBank    = "对方开户行"
	ColLocation            = "交易场所"
	ColRegion              = "交易地区"
	ColBranch              = "交易网点"
	ColTeller              = "柜员号"
	ColForeignCode         = "涉外交易代码"
	ColCode                = "交易代码"
	ColAgent               = "代办人"
	ColAgentID             = "代办人证件"
	ColOther               = "其他"

	// ColAbsAmount is appended to the final ledger for sorting by magnitude.
	ColAbsAmount = "金额绝对值"

	// ColAccountOrCard names the synthetic check requiring an account or a card number per row.
	ColAccountOrCard = "账号或卡号"
)

// CanonicalColumns is the fixed output order of the ledger.
var CanonicalColumns = []string{
	ColBank, ColHolder, ColAccount, ColCard, ColDate, ColFlag, ColCurrency, ColAmount,
	ColBalance, ColType, ColRemarks, ColMemo, ColPostscript, ColCounterpartyName,
	ColCounterpartyAccount, ColCounterpartyBank, ColLocation, ColRegion, ColBranch,
	ColTeller, ColForeignCode, ColCode, ColAgent, ColAgentID, ColOther,
}

// IsCanonical reports whether name is one of the canonical ledger columns.
func IsCanonical(name string) bool {
	for _, c := range CanonicalColumns {
		if c == name {
			return true
		}
	}
	return false
}
