package usecase

import (
	"fmt"

	"github.com/iho/bankledger/internal/domain"
)

// Built-in special handler ids.
const (
	HandlerDirectoryJoin  = "directory-join"
	HandlerSectionedSheet = "sectioned-sheet"
	HandlerBannerSheet    = "banner-sheet"
)

// DirectoryJoinLayouts holds the directory-join layouts by institution.
var DirectoryJoinLayouts = map[string]DirectoryJoinConfig{
	"建设银行": {
		TransactionSheets: []string{"交易明细", "活期交易明细", "个人活期账户交易明细"},
		DirectorySheets:   []string{"账户信息", "客户账户信息", "开户信息"},
		TransactionColumns: map[string]string{
			"账号":    domain.ColAccount,
			"客户账号":  domain.ColAccount,
			"交易日期":  domain.ColDate,
			"交易金额":  domain.ColAmount,
			"账户余额":  domain.ColBalance,
			"币种":    domain.ColCurrency,
			"对方户名":  domain.ColCounterpartyName,
			"对方账号":  domain.ColCounterpartyAccount,
			"对方开户行": domain.ColCounterpartyBank,
			"交易机构名称": domain.ColBranch,
			"交易渠道":  domain.ColType,
			"摘要":    domain.ColMemo,
			"备注":    domain.ColRemarks,
			"柜员号":   domain.ColTeller,
		},
		DirectoryColumns: map[string]string{
			"客户名称": domain.ColHolder,
			"账号":   domain.ColAccount,
			"客户账号": domain.ColAccount,
			"卡号":   domain.ColCard,
			"币种":   domain.ColCurrency,
		},
		JoinKey:        domain.ColAccount,
		CollapseColumn: domain.ColCard,
		Separator:      "/",
	},
	"中国银行": {
		TransactionSheets: []string{"交易流水", "存款交易明细", "借记卡交易明细"},
		DirectorySheets:   []string{"借记卡信息", "卡片信息", "账户信息"},
		TransactionColumns: map[string]string{
			"卡号":     domain.ColCard,
			"借记卡号":   domain.ColCard,
			"交易日期":   domain.ColDate,
			"交易金额":   domain.ColAmount,
			"交易后余额":  domain.ColBalance,
			"借贷标识":   domain.ColFlag,
			"币种":     domain.ColCurrency,
			"对方户名":   domain.ColCounterpartyName,
			"对方账号":   domain.ColCounterpartyAccount,
			"对方开户行":  domain.ColCounterpartyBank,
			"交易网点名称": domain.ColBranch,
			"交易渠道":   domain.ColType,
			"摘要":     domain.ColMemo,
			"交易代码":   domain.ColCode,
		},
		DirectoryColumns: map[string]string{
			"卡号":   domain.ColCard,
			"借记卡号": domain.ColCard,
			"账号":   domain.ColAccount,
			"客户姓名": domain.ColHolder,
			"客户名称": domain.ColHolder,
		},
		JoinKey: domain.ColCard,
	},
	"华夏银行": {
		TransactionSheets: []string{"账户交易明细", "交易明细查询"},
		DirectorySheets:   []string{"账户信息", "客户信息"},
		TransactionColumns: map[string]string{
			"账号":   domain.ColAccount,
			"交易日期": domain.ColDate,
			"交易金额": domain.ColAmount,
			"借贷标志": domain.ColFlag,
			"余额":   domain.ColBalance,
			"对方户名": domain.ColCounterpartyName,
			"对方账号": domain.ColCounterpartyAccount,
			"对方行名": domain.ColCounterpartyBank,
			"交易方式": domain.ColType,
			"摘要":   domain.ColMemo,
			"币种":   domain.ColCurrency,
		},
		DirectoryColumns: map[string]string{
			"户名":   domain.ColHolder,
			"账号":   domain.ColAccount,
			"开户网点": domain.ColBranch,
		},
		JoinKey: domain.ColAccount,
	},
}

// SectionedSheetLayouts holds the sectioned-sheet layouts by institution.
var SectionedSheetLayouts = map[string]SectionedSheetConfig{
	"邮储银行": {
		Columns: map[string]string{
			"交易日期": domain.ColDate,
			"交易金额": domain.ColAmount,
			"账户余额": domain.ColBalance,
			"余额":   domain.ColBalance,
			"交易渠道": domain.ColType,
			"摘要":   domain.ColMemo,
			"交易网点": domain.ColBranch,
			"对方账号": domain.ColCounterpartyAccount,
			"对方户名": domain.ColCounterpartyName,
		},
		BannerLabels: map[string]string{
			"户名":   domain.ColHolder,
			"客户名称": domain.ColHolder,
			"账号":   domain.ColAccount,
			"卡号":   domain.ColCard,
			"币种":   domain.ColCurrency,
		},
	},
}

// BannerSheetLayouts holds the banner-sheet layouts by institution.
var BannerSheetLayouts = map[string]BannerSheetConfig{
	"平安银行": {
		Fields: []BannerField{
			{Column: domain.ColHolder, Row: 1, Col: 1},
			{Column: domain.ColAccount, Row: 1, Col: 3},
			{Column: domain.ColCurrency, Row: 2, Col: 1},
		},
		HeaderRow: 3,
		Columns: map[string]string{
			"交易日期":  domain.ColDate,
			"借方发生额": domain.ColAmount,
			"余额":    domain.ColBalance,
			"对方户名":  domain.ColCounterpartyName,
			"对方账号":  domain.ColCounterpartyAccount,
			"对方行名":  domain.ColCounterpartyBank,
			"摘要":    domain.ColMemo,
			"交易网点":  domain.ColBranch,
		},
	},
	"宁夏银行": {
		Fields: []BannerField{
			{Column: domain.ColHolder, Row: 0, Col: 0, Labelled: true},
			{Column: domain.ColAccount, Row: 1, Col: 0, Labelled: true},
			{Column: domain.ColCurrency, Row: 1, Col: 2, Labelled: true},
		},
		HeaderRow: 2,
		Columns: map[string]string{
			"交易日期": domain.ColDate,
			"发生额":  domain.ColAmount,
			"借贷标志": domain.ColFlag,
			"余额":   domain.ColBalance,
			"对方户名": domain.ColCounterpartyName,
			"对方账号": domain.ColCounterpartyAccount,
			"对方行名": domain.ColCounterpartyBank,
			"交易渠道": domain.ColType,
			"摘要":   domain.ColMemo,
			"交易机构": domain.ColBranch,
		},
	},
}

func registerBuiltinHandlers(r *AdapterRegistry) {
	r.Register(HandlerDirectoryJoin, func(p *domain.Profile, opts Options) (SourceAdapter, error) {
		cfg, ok := DirectoryJoinLayouts[p.Name()]
		if !ok {
			return nil, layoutMissing(p)
		}
		return NewDirectoryJoinAdapter(cfg, opts), nil
	})
	r.Register(HandlerSectionedSheet, func(p *domain.Profile, opts Options) (SourceAdapter, error) {
		cfg, ok := SectionedSheetLayouts[p.Name()]
		if !ok {
			return nil, layoutMissing(p)
		}
		return NewSectionedSheetAdapter(cfg, opts), nil
	})
	r.Register(HandlerBannerSheet, func(p *domain.Profile, opts Options) (SourceAdapter, error) {
		cfg, ok := BannerSheetLayouts[p.Name()]
		if !ok {
			return nil, layoutMissing(p)
		}
		return NewBannerSheetAdapter(cfg, opts), nil
	})
}

func layoutMissing(p *domain.Profile) error {
	return fmt.Errorf("%w: no %s layout for %s", domain.ErrInvalidProfile, p.Handler(), p.Name())
}
