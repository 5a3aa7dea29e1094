package usecase

import (
	"strings"

	"github.com/iho/bankledger/internal/domain"
)

const (
	// DefaultHeaderProbes is how many leading rows are tried as the header.
	DefaultHeaderProbes = 3

	// DefaultNoResultsMarker is written by some exports in place of an empty section.
	DefaultNoResultsMarker = "没有找到符合条件的记录"
)

// Metric status and stage labels.
const (
	StatusOK          = "ok"
	StatusFailed      = "failed"
	StatusUnsupported = "unsupported"

	StageSeen    = "seen"
	StageKept    = "kept"
	StageDropped = "dropped"
)

// Options tunes the normalization run.
type Options struct {
	HeaderProbes       int
	OutflowTokens      []string
	NoTransactionWords []string
	HolderBoilerplate  []string
	IgnoreGlobs        []string
	NoResultsMarker    string
	Workers            int
}

// DefaultOptions returns the settings the pipeline was tuned with.
func DefaultOptions() Options {
	return Options{
		HeaderProbes:       DefaultHeaderProbes,
		OutflowTokens:      []string{"付", "支出", "借", "借方", "出账", "转出", "D", "0"},
		NoTransactionWords: []string{"无交易", "在我行仅有信用卡账户"},
		HolderBoilerplate:  []string{"逐笔明细", "明细表", "交易明细"},
		IgnoreGlobs:        []string{"~*", ".*", "*账户情况.xls*"},
		NoResultsMarker:    DefaultNoResultsMarker,
		Workers:            1,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.HeaderProbes <= 0 {
		o.HeaderProbes = def.HeaderProbes
	}
	if o.OutflowTokens == nil {
		o.OutflowTokens = def.OutflowTokens
	}
	if o.NoTransactionWords == nil {
		o.NoTransactionWords = def.NoTransactionWords
	}
	if o.HolderBoilerplate == nil {
		o.HolderBoilerplate = def.HolderBoilerplate
	}
	if o.IgnoreGlobs == nil {
		o.IgnoreGlobs = def.IgnoreGlobs
	}
	if o.NoResultsMarker == "" {
		o.NoResultsMarker = def.NoResultsMarker
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}

// accountKey groups rows of the same account for balance comparisons.
func accountKey(t *domain.Table, i int) string {
	return strings.TrimSpace(t.Value(i, domain.ColAccount)) + "\x00" + strings.TrimSpace(t.Value(i, domain.ColCard))
}
