package domain

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// SheetNameKind tells what a sheet's name carries.
type SheetNameKind int

const (
	SheetNameNone SheetNameKind = iota
	SheetNameHolder
	SheetNameAccount
)

// Column returns the canonical column a sheet name is injected into.
func (k SheetNameKind) Column() string {
	switch k {
	case SheetNameHolder:
		return ColHolder
	case SheetNameAccount:
		return ColAccount
	default:
		return ""
	}
}

func (k SheetNameKind) String() string {
	switch k {
	case SheetNameHolder:
		return "holder"
	case SheetNameAccount:
		return "account"
	default:
		return "none"
	}
}

// ParseSheetNameKind accepts "holder"/"户名", "account"/"账号" and "none"/"".
func ParseSheetNameKind(s string) (SheetNameKind, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return SheetNameNone, nil
	case "holder", ColHolder:
		return SheetNameHolder, nil
	case "account", ColAccount:
		return SheetNameAccount, nil
	}
	return SheetNameNone, fmt.Errorf("%w: unknown sheet name kind %q", ErrInvalidProfile, s)
}

// Column presets shared by many institutions.
var (
	CheckColumnsDefault = []string{ColBank, ColHolder, ColFlag, ColDate, ColAmount, ColBalance}
	CheckColumnsCommon  = []string{ColBank, ColHolder, ColFlag, ColDate, ColAmount}
	CheckColumnsNoSign  = []string{ColBank, ColHolder, ColDate, ColAmount, ColBalance}

	NeedColumnsDefault   = []string{ColCounterpartyName, ColBranch, ColType, ColCode, ColMemo, ColRemarks}
	NeedColumnsWords     = []string{ColCounterpartyName, ColBranch, ColType, ColCode, ColMemo, ColPostscript, ColRemarks}
	NeedColumnsNoRemarks = []string{ColCounterpartyName, ColBranch, ColType, ColCode, ColMemo}
)

// Without returns cols minus the removed names.
func Without(cols []string, removed ...string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		drop := false
		for _, r := range removed {
			if c == r {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, c)
		}
	}
	return out
}

// Profile describes how one institution's export maps onto the ledger.
// A profile is immutable: accessors return copies.
type Profile struct {
	name                 string
	columnMap            map[string]string
	sheetName            SheetNameKind
	amountsSigned        bool
	tolerateEmptySheets  bool
	tolerateNoDataSheets bool
	secondAmountColumn   string
	decorations          []string
	holderFromName       bool
	holderFromDir        bool
	handler              string
	skipFiles            string
	footerRows           int
	checkColumns         []string
	needColumns          []string
}

// ProfileOption configures a profile under construction.
type ProfileOption func(*Profile)

// NewProfile builds and validates a profile.
func NewProfile(name string, opts ...ProfileOption) (*Profile, error) {
	p := &Profile{
		name:         name,
		checkColumns: CheckColumnsDefault,
		needColumns:  NeedColumnsDefault,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustProfile is NewProfile for static tables; it panics on an invalid profile.
func MustProfile(name string, opts ...ProfileOption) *Profile {
	p, err := NewProfile(name, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Derive returns a validated copy of p with opts applied on top.
func (p *Profile) Derive(opts ...ProfileOption) (*Profile, error) {
	cp := *p
	cp.columnMap = p.ColumnMap()
	cp.decorations = p.Decorations()
	cp.checkColumns = p.CheckColumns()
	cp.needColumns = p.NeedColumns()
	for _, opt := range opts {
		opt(&cp)
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return &cp, nil
}

// Validate checks the profile invariants.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProfile)
	}
	if len(p.columnMap) > 0 && p.handler != "" {
		return fmt.Errorf("%w: %s declares both a column map and handler %q", ErrInvalidProfile, p.name, p.handler)
	}
	if p.footerRows < 0 {
		return fmt.Errorf("%w: %s has negative footer rows", ErrInvalidProfile, p.name)
	}
	return nil
}

// WithName renames a derived profile.
func WithName(name string) ProfileOption {
	return func(p *Profile) { p.name = name }
}

func WithColumnMap(m map[string]string) ProfileOption {
	return func(p *Profile) {
		p.columnMap = make(map[string]string, len(m))
		for k, v := range m {
			p.columnMap[k] = v
		}
	}
}

func WithSheetName(k SheetNameKind) ProfileOption {
	return func(p *Profile) { p.sheetName = k }
}

// WithSignedAmounts marks amounts as already negative for outflows.
func WithSignedAmounts(v bool) ProfileOption {
	return func(p *Profile) { p.amountsSigned = v }
}

func WithEmptySheets(v bool) ProfileOption {
	return func(p *Profile) { p.tolerateEmptySheets = v }
}

func WithNoDataSheets(v bool) ProfileOption {
	return func(p *Profile) { p.tolerateNoDataSheets = v }
}

func WithSecondAmountColumn(col string) ProfileOption {
	return func(p *Profile) { p.secondAmountColumn = col }
}

// WithDecorations makes the holder name come from the file name, with each
// decoration removed. No decorations means the file name is used verbatim.
func WithDecorations(decorations ...string) ProfileOption {
	return func(p *Profile) {
		p.holderFromName = true
		p.decorations = append([]string(nil), decorations...)
	}
}

// WithHolderFromDir takes the holder name from the file's parent directory.
func WithHolderFromDir() ProfileOption {
	return func(p *Profile) {
		p.holderFromName = true
		p.holderFromDir = true
	}
}

func WithHandler(id string) ProfileOption {
	return func(p *Profile) { p.handler = id }
}

func WithSkipFiles(glob string) ProfileOption {
	return func(p *Profile) { p.skipFiles = glob }
}

func WithFooterRows(n int) ProfileOption {
	return func(p *Profile) { p.footerRows = n }
}

func WithCheckColumns(cols ...string) ProfileOption {
	return func(p *Profile) { p.checkColumns = append([]string(nil), cols...) }
}

func WithNeedColumns(cols ...string) ProfileOption {
	return func(p *Profile) { p.needColumns = append([]string(nil), cols...) }
}

func (p *Profile) Name() string { return p.name }
func (p *Profile) SheetName() SheetNameKind { return p.sheetName }
func (p *Profile) AmountsSigned() bool { return p.amountsSigned }
func (p *Profile) TolerateEmptySheets() bool { return p.tolerateEmptySheets }
func (p *Profile) TolerateNoDataSheets() bool { return p.tolerateNoDataSheets }
func (p *Profile) SecondAmountColumn() string { return p.secondAmountColumn }
func (p *Profile) HolderFromName() bool { return p.holderFromName }
func (p *Profile) HolderFromDir() bool { return p.holderFromDir }
func (p *Profile) Handler() string { return p.handler }
func (p *Profile) SkipFiles() string { return p.skipFiles }
func (p *Profile) FooterRows() int { return p.footerRows }
func (p *Profile) Decorations() []string { return append([]string(nil), p.decorations...) }
func (p *Profile) CheckColumns() []string { return append([]string(nil), p.checkColumns...) }
func (p *Profile) NeedColumns() []string { return append([]string(nil), p.needColumns...) }
func (p *Profile) IsSpecial() bool { return p.handler != "" }

// ColumnMap returns a copy of the original-to-canonical column mapping.
func (p *Profile) ColumnMap() map[string]string {
	out := make(map[string]string, len(p.columnMap))
	for k, v := range p.columnMap {
		out[k] = v
	}
	return out
}

// Fingerprint digests every setting of the profile. Two profiles with the
// same fingerprint parse a file identically.
func (p *Profile) Fingerprint() string {
	keys := make([]string, 0, len(p.columnMap))
	for k := range p.columnMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	fmt.Fprintf(h, "%q\x00", p.name)
	for _, k := range keys {
		fmt.Fprintf(h, "%q=%q;", k, p.columnMap[k])
	}
	fmt.Fprintf(h, "\x00%d %t %t %t %q %q %t %t %q %q %d %q %q",
		p.sheetName, p.amountsSigned, p.tolerateEmptySheets, p.tolerateNoDataSheets,
		p.secondAmountColumn, p.decorations, p.holderFromName, p.holderFromDir,
		p.handler, p.skipFiles, p.footerRows, p.checkColumns, p.needColumns)
	return fmt.Sprintf("%x", h.Sum(nil))
}
