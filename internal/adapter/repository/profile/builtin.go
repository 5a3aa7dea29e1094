package profile

import (
	d "github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// CommonColumnMap maps the columns of the suspicious-transaction report
// ("银行业金融机构报告可疑交易逐笔明细表") several banks export.
var CommonColumnMap = map[string]string{
	"资金收付标志":         d.ColFlag,
	" 交易额(按原币计)":     d.ColAmount,
	"交易对手姓名或名称":      d.ColCounterpartyName,
	"交易对手账号":         d.ColCounterpartyAccount,
	"对方金融机构网点名称":     d.ColCounterpartyBank,
	"金融机构名称":         d.ColBranch,
	"涉外收支交易分类与代码":    d.ColForeignCode,
	"业务标示号":          d.ColCode,
	"代办人姓名":          d.ColAgent,
	"代办人身份证件/证明文件号码": d.ColAgentID,
	"资金来源和用途":        d.ColMemo,
}

// Builtin returns the profiles of every supported institution.
func Builtin() []*d.Profile {
	return []*d.Profile{
		d.MustProfile("北京银行",
			d.WithColumnMap(map[string]string{
				"帐号":        d.ColAccount,
				"资金收付标志":    d.ColFlag,
				"金额":        d.ColAmount,
				"余额":        d.ColBalance,
				"交易对手姓名":    d.ColCounterpartyName,
				"交易对手帐号":    d.ColCounterpartyAccount,
				"交易对手金融机构名称": d.ColCounterpartyBank,
				"开户银行机构名称":  d.ColBranch,
				"交易附言":      d.ColMemo,
			}),
			d.WithSheetName(d.SheetNameHolder),
			d.WithFooterRows(1),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode)...),
		),
		d.MustProfile("工商银行",
			d.WithColumnMap(map[string]string{
				"帐号":      d.ColAccount,
				"服务界面":    d.ColType,
				"渠道":      d.ColType,
				"发生额":     d.ColAmount,
				"余额":      d.ColBalance,
				"对方帐户":    d.ColCounterpartyAccount,
				"对方开户行名":  d.ColCounterpartyBank,
				"对方行名":    d.ColCounterpartyBank,
				"交易地区号":   d.ColRegion,
				"交易网点号":   d.ColBranch,
				"注释":      d.ColRemarks,
				"入账日期":    d.ColDate,
				"入帐日期":    d.ColDate,
				"交易金额":    "金额",
				"对方卡号/账号": d.ColCounterpartyAccount,
				"对方帐号":    d.ColCounterpartyAccount,
				"对方帐户户名":  d.ColCounterpartyName,
				"更新后余额":   d.ColBalance,
				"交易柜员号":   d.ColTeller,
				"交易场所简称":  d.ColLocation,
				"交易描述":    d.ColRemarks,
				"备注1":     d.ColRemarks,
			}),
			d.WithNoDataSheets(true),
			d.WithDecorations(),
		),
		d.MustProfile("广发银行",
			d.WithColumnMap(map[string]string{
				"客户名称":    d.ColHolder,
				"本方账号":    d.ColAccount,
				"本方交易介质":  d.ColCard,
				"交易渠道中文":  d.ColType,
				"借贷标识":    d.ColFlag,
				"交易货币":    d.ColCurrency,
				"当前余额":    d.ColBalance,
				"对手账号名称":  d.ColCounterpartyName,
				"对手账号行所号": d.ColCounterpartyBank,
				"交易行":     d.ColBranch,
				"交易柜员":    d.ColTeller,
				"交易码中文":   d.ColCode,
				"摘要中文":    d.ColMemo,
			}),
			d.WithNeedColumns(d.NeedColumnsWords...),
		),
		d.MustProfile("哈尔滨银行",
			d.WithColumnMap(map[string]string{
				"交易时间": d.ColDate,
				"渠道名称": d.ColType,
				"借贷标识": d.ColFlag,
				"余额":   d.ColBalance,
				"币种名称": d.ColCurrency,
				"机构号":  d.ColBranch,
				"现转标识": d.ColMemo,
				"附言":   d.ColRemarks,
			}),
			d.WithFooterRows(5),
			d.WithNeedColumns(d.Without(d.NeedColumnsDefault, d.ColCode, d.ColCounterpartyName)...),
		),
		d.MustProfile("交通银行",
			d.WithColumnMap(map[string]string{
				"主记账帐号":    d.ColAccount,
				"主名义账号":    d.ColCard,
				"金额":       d.ColAmount,
				"对方分行":     d.ColCounterpartyBank,
				"交易分行":     d.ColRegion,
				"交易网点/部门":  d.ColBranch,
				"交易柜员":     d.ColTeller,
				"业务摘要区":    d.ColMemo,
				"帐号":       d.ColAccount,
				"交易机构所属分行": d.ColRegion,
				"交易机构号":    d.ColBranch,
				"借贷方标志":    d.ColFlag,
				"对方帐号":     d.ColCounterpartyAccount,
				"货币码":      d.ColCurrency,
				"技术摘要":     d.ColMemo,
			}),
			d.WithDecorations("流水"),
			d.WithCheckColumns(d.CheckColumnsCommon...),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode, d.ColType, d.ColMemo)...),
		),
		d.MustProfile("廊坊银行",
			d.WithColumnMap(map[string]string{
				"客户账号":    d.ColAccount,
				"货币代号":    d.ColCurrency,
				"产品说明":    d.ColType,
				"借方发生额":   d.ColAmount,
				"对方客户账号":  d.ColCounterpartyAccount,
				"营业机构":    d.ColBranch,
				"柜员代号":    d.ColTeller,
				"代理人姓名":   d.ColAgent,
				"代理人证件号码": d.ColAgentID,
				"摘要描述":    d.ColMemo,
			}),
			d.WithSecondAmountColumn("贷方发生额"),
			d.WithDecorations("活期账户流水"),
		),
		d.MustProfile("渤海银行",
			d.WithColumnMap(CommonColumnMap),
			d.WithDecorations("报告可疑交易逐笔明细表—"),
			d.WithCheckColumns(d.CheckColumnsCommon...),
			d.WithNeedColumns(d.Without(d.NeedColumnsDefault, d.ColMemo)...),
		),
		d.MustProfile("光大银行",
			d.WithColumnMap(CommonColumnMap),
			d.WithDecorations("交易明细"),
			d.WithCheckColumns(d.CheckColumnsCommon...),
		),
		d.MustProfile("河北银行",
			d.WithColumnMap(CommonColumnMap),
			d.WithDecorations("：银行业金融机构报告可疑交易逐笔明细表"),
			d.WithCheckColumns(d.CheckColumnsCommon...),
		),
		d.MustProfile("民生银行",
			d.WithColumnMap(map[string]string{
				"客户姓名":   d.ColHolder,
				"客户账户":   d.ColAccount,
				"客户账号":   d.ColAccount,
				"原币交易金额": d.ColAmount,
				"对方名称":   d.ColCounterpartyName,
				"对方银行名称": d.ColCounterpartyBank,
			}),
			d.WithCheckColumns(d.CheckColumnsCommon...),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode, d.ColBranch, d.ColType)...),
		),
		d.MustProfile("浦发银行",
			d.WithColumnMap(map[string]string{
				"调查户名":          d.ColHolder,
				"0(支出)/1（收入）": d.ColFlag,
				"金额":            d.ColAmount,
				"对方开户银行":        d.ColCounterpartyBank,
				"开户银行":          d.ColBranch,
			}),
			d.WithCheckColumns(d.CheckColumnsCommon...),
			d.WithNeedColumns(d.Without(d.NeedColumnsDefault, d.ColCode, d.ColMemo)...),
		),
		d.MustProfile("天津农商银行",
			d.WithColumnMap(CommonColumnMap),
			d.WithDecorations("银行业金融机构报告可疑交易逐笔明细表——"),
			d.WithCheckColumns(d.CheckColumnsCommon...),
		),
		d.MustProfile("天津银行",
			d.WithColumnMap(map[string]string{
				"姓名":             d.ColHolder,
				"资金收付标志":         d.ColFlag,
				" 交易额(按原币计)（元）":  d.ColAmount,
				"交易对手姓名或名称":      d.ColCounterpartyName,
				"交易对手账号":         d.ColCounterpartyAccount,
				"对方金融机构网点名称":     d.ColCounterpartyBank,
				"金融机构名称":         d.ColBranch,
				"涉外收支交易分类与代码":    d.ColForeignCode,
				"业务标示号":          d.ColCode,
				"代办人姓名":          d.ColAgent,
				"代办人身份证件/证明文件号码": d.ColAgentID,
				"资金来源和用途":        d.ColMemo,
			}),
			d.WithEmptySheets(true),
			d.WithCheckColumns(d.CheckColumnsCommon...),
			d.WithNeedColumns(d.NeedColumnsNoRemarks...),
		),
		d.MustProfile("兴业银行",
			d.WithColumnMap(map[string]string{
				"交易机构编号": d.ColBranch,
				"交易名称":   d.ColRemarks,
				"渠道类型代码": d.ColType,
				"帐号":     d.ColAccount,
				"对手帐号":   d.ColCounterpartyAccount,
				"对手账号":   d.ColCounterpartyAccount,
				"对手户名":   d.ColCounterpartyName,
				"对手开户行":  d.ColCounterpartyBank,
				"摘要描述":   d.ColMemo,
				"柜员流水号":  d.ColTeller,
			}),
			d.WithDecorations(),
		),
		d.MustProfile("渣打银行",
			d.WithColumnMap(CommonColumnMap),
			d.WithDecorations(),
			d.WithFooterRows(1),
			d.WithCheckColumns(d.CheckColumnsCommon...),
		),
		d.MustProfile("中信银行",
			d.WithColumnMap(map[string]string{
				"交易码":      d.ColCode,
				"借贷类型代码":   d.ColFlag,
				"通用对方客户账号": d.ColCounterpartyAccount,
				"对方账户名称":   d.ColCounterpartyName,
				"对方行名称":    d.ColCounterpartyBank,
				"客户账号":     d.ColAccount,
				"客户名称":     d.ColHolder,
				"核心交易代码":   d.ColCode,
				"币种中文":     d.ColCurrency,
				"交易用户名":    d.ColTeller,
			}),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColBranch, d.ColType)...),
		),
		d.MustProfile("招商银行",
			d.WithColumnMap(map[string]string{
				"客户名称":     d.ColHolder,
				"交易卡号":     d.ColAccount,
				"联机余额":     d.ColBalance,
				"交易摘要":     d.ColMemo,
				"文字摘要":     d.ColRemarks,
				"对手帐号":     d.ColCounterpartyAccount,
				"对手名称":     d.ColCounterpartyName,
				"对手开户行":    d.ColCounterpartyBank,
				"我方摘要":     d.ColMemo,
				"对方开户机构名称": d.ColCounterpartyBank,
				"对方客户名称":   d.ColCounterpartyName,
				"业务编号":     d.ColAccount,
				"对方业务编号":   d.ColCounterpartyAccount,
				"交易机构":     d.ColBranch,
			}),
			d.WithSignedAmounts(true),
			d.WithHolderFromDir(),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.Without(d.NeedColumnsDefault, d.ColCode, d.ColType, d.ColBranch)...),
		),
		d.MustProfile("农业银行",
			d.WithColumnMap(map[string]string{
				"合约号":        d.ColAccount,
				"产品号":        d.ColCard,
				"合约外部服务标识号码": d.ColCard,
				"合约名称":       d.ColHolder,
				"借方交易金额":     d.ColAmount,
				"借方金额":       d.ColAmount,
				"贷方金额":       "贷方交易金额",
				"交易金额借方":     d.ColAmount,
				"交易金额贷方":     "贷方交易金额",
				"贷方交易金额.1":   "贷方交易金额",
				"贷方交易金额_1":   "贷方交易金额",
				"贷方交易金额_":    "贷方交易金额",
				"交易后余额":      d.ColBalance,
				"合约账户余额1":    d.ColBalance,
				"合约账户余额":     d.ColBalance,
				"对方银行":       d.ColCounterpartyBank,
				"对方开户银行":     d.ColCounterpartyBank,
				"交易对手账号":     d.ColCounterpartyAccount,
				"对方名称":       d.ColCounterpartyName,
				"交易渠道":       d.ColType,
				"渠道代码":       d.ColType,
				"摘要信息":       d.ColMemo,
				"记账方向标识_1":   d.ColFlag,
				"交易地点":       d.ColBranch,
				"对方省市代号":     d.ColRegion,
			}),
			d.WithSecondAmountColumn("贷方交易金额"),
			d.WithFooterRows(1),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode, d.ColBranch)...),
		),
		d.MustProfile("威海银行",
			d.WithColumnMap(map[string]string{
				"币别":     d.ColCurrency,
				"借方发生额":  d.ColAmount,
				"交易渠道":   d.ColType,
				"交易机构名称": d.ColBranch,
				"摘要代码":   d.ColMemo,
				"对方名称":   d.ColCounterpartyName,
				"交易对方行名": d.ColCounterpartyBank,
				"交易类别":   d.ColPostscript,
			}),
			d.WithSheetName(d.SheetNameAccount),
			d.WithDecorations("流水"),
			d.WithSecondAmountColumn("贷方发生额"),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.Without(d.NeedColumnsWords, d.ColCode)...),
		),
		d.MustProfile("锦州银行",
			d.WithColumnMap(map[string]string{
				"交易地点": d.ColBranch,
				"交易说明": d.ColMemo,
				"支出":   d.ColAmount,
				"交易柜员": d.ColTeller,
				"余额":   d.ColBalance,
			}),
			d.WithSecondAmountColumn("存入"),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.ColCounterpartyName, d.ColMemo),
		),
		d.MustProfile("津南村镇银行",
			d.WithColumnMap(map[string]string{
				"交易机构":    d.ColBranch,
				"交易名称":    d.ColMemo,
				"TRCASH":  d.ColType,
				"交易柜员":    d.ColTeller,
				"DRCRIND": d.ColFlag,
				"客户名称":    d.ColHolder,
			}),
			d.WithSkipFiles("*大小额明细*"),
			d.WithCheckColumns(d.CheckColumnsCommon...),
			d.WithNeedColumns(d.ColType, d.ColMemo, d.ColRemarks),
		),

		d.MustProfile("中国银行",
			d.WithHandler(usecase.HandlerDirectoryJoin),
			d.WithNeedColumns(d.NeedColumnsNoRemarks...),
		),
		d.MustProfile("建设银行",
			d.WithHandler(usecase.HandlerDirectoryJoin),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.Without(d.NeedColumnsDefault, d.ColCode)...),
		),
		d.MustProfile("华夏银行",
			d.WithHandler(usecase.HandlerDirectoryJoin),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode, d.ColBranch)...),
		),
		d.MustProfile("邮储银行",
			d.WithHandler(usecase.HandlerSectionedSheet),
			d.WithSignedAmounts(true),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.Without(d.NeedColumnsDefault, d.ColCounterpartyName, d.ColCode, d.ColRemarks)...),
		),
		d.MustProfile("平安银行",
			d.WithHandler(usecase.HandlerBannerSheet),
			d.WithSecondAmountColumn("贷方发生额"),
			d.WithCheckColumns(d.CheckColumnsNoSign...),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode, d.ColType)...),
		),
		d.MustProfile("宁夏银行",
			d.WithHandler(usecase.HandlerBannerSheet),
			d.WithNeedColumns(d.Without(d.NeedColumnsNoRemarks, d.ColCode)...),
		),
	}
}
