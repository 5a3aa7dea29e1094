package domain

import (
	"errors"
	"testing"
)

func TestNewProfileDefaults(t *testing.T) {
	t.Parallel()

	p, err := NewProfile("测试银行", WithColumnMap(map[string]string{"金额": ColAmount}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.CheckColumns()) != len(CheckColumnsDefault) {
		t.Fatalf("expected default check columns, got %v", p.CheckColumns())
	}
	if p.HolderFromName() {
		t.Fatalf("expected holder not to come from the file name")
	}
}

func TestProfileRejectsMapAndHandler(t *testing.T) {
	t.Parallel()

	_, err := NewProfile("测试银行",
		WithColumnMap(map[string]string{"金额": ColAmount}),
		WithHandler("banner-sheet"),
	)
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestProfileIsImmutable(t *testing.T) {
	t.Parallel()

	source := map[string]string{"金额": ColAmount}
	p := MustProfile("测试银行", WithColumnMap(source), WithDecorations("流水"))

	source["余额"] = ColBalance
	p.ColumnMap()["x"] = "y"
	p.Decorations()[0] = "changed"

	if len(p.ColumnMap()) != 1 {
		t.Fatalf("column map leaked mutation: %v", p.ColumnMap())
	}
	if p.Decorations()[0] != "流水" {
		t.Fatalf("decorations leaked mutation: %v", p.Decorations())
	}
}

func TestProfileDerive(t *testing.T) {
	t.Parallel()

	base := MustProfile("测试银行", WithFooterRows(1))
	derived, err := base.Derive(WithFooterRows(3), WithHolderFromDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.FooterRows() != 1 || derived.FooterRows() != 3 {
		t.Fatalf("derive mutated the base profile")
	}
	if !derived.HolderFromName() || !derived.HolderFromDir() {
		t.Fatalf("expected holder from directory")
	}

	if _, err := base.Derive(WithFooterRows(-1)); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestProfileFingerprint(t *testing.T) {
	t.Parallel()

	cols := map[string]string{"日期": ColDate, "金额": ColAmount, "余额": ColBalance}
	base := MustProfile("测试银行", WithColumnMap(cols), WithFooterRows(1))
	same := MustProfile("测试银行", WithColumnMap(cols), WithFooterRows(1))
	if base.Fingerprint() != same.Fingerprint() {
		t.Fatalf("expected equal profiles to share a fingerprint")
	}

	variants := map[string][]ProfileOption{
		"footer rows":   {WithFooterRows(2)},
		"column map":    {WithColumnMap(map[string]string{"日期": ColDate, "金额": ColAmount})},
		"signed":        {WithSignedAmounts(true)},
		"sheet name":    {WithSheetName(SheetNameHolder)},
		"decorations":   {WithDecorations("流水")},
		"check columns": {WithCheckColumns(ColDate)},
	}
	for name, opts := range variants {
		derived, err := base.Derive(opts...)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if derived.Fingerprint() == base.Fingerprint() {
			t.Errorf("%s: expected the fingerprint to change", name)
		}
	}
}

func TestParseSheetNameKind(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]SheetNameKind{"": SheetNameNone, "户名": SheetNameHolder, "account": SheetNameAccount} {
		got, err := ParseSheetNameKind(input)
		if err != nil || got != want {
			t.Fatalf("ParseSheetNameKind(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseSheetNameKind("bogus"); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}
