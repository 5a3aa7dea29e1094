package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/iho/bankledger/internal/adapter/source/memory"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func genericProfile(opts ...domain.ProfileOption) *domain.Profile {
	base := []domain.ProfileOption{
		domain.WithColumnMap(map[string]string{
			"日期": domain.ColDate,
			"金额": domain.ColAmount,
			"帐号": domain.ColAccount,
		}),
		domain.WithSheetName(domain.SheetNameHolder),
	}
	return domain.MustProfile("测试银行", append(base, opts...)...)
}

func TestGenericAdapter_Parse(t *testing.T) {
	file := sourceFile("测试银行/a.xls",
		memory.NewSheet("张三",
			row("日期", "金额", "帐号"),
			row("2020-01-01", "100", "A1"),
			row("2020-01-02", "200", ""),
			row("无交易", "", ""),
		),
		memory.NewSheet("空"),
		memory.NewSheet("坏",
			row("说明"),
			row("说明"),
			row("说明"),
			row("日期", "金额"),
		),
		memory.NewSheet("无日期", row("x", "y"), row("1", "2")),
	)

	adapter := usecase.NewGenericAdapter(genericProfile(), usecase.DefaultOptions())
	res, err := adapter.Parse(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Sheets != 4 {
		t.Errorf("expected 4 sheets seen, got %d", res.Sheets)
	}
	if !reflect.DeepEqual(res.ParsedSheets, []string{"张三"}) {
		t.Errorf("unexpected parsed sheets %v", res.ParsedSheets)
	}
	if !reflect.DeepEqual(res.FailedSheets, []string{"坏", "无日期"}) {
		t.Errorf("unexpected failed sheets %v", res.FailedSheets)
	}
	if res.Lines != 2 {
		t.Errorf("expected 2 lines, sentinel excluded, got %d", res.Lines)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("expected a warning per failed sheet, got %v", res.Warnings)
	}

	tbl := res.Tables[0]
	wantCols := []string{domain.ColDate, domain.ColAmount, domain.ColAccount, domain.ColHolder}
	if !reflect.DeepEqual(tbl.Columns, wantCols) {
		t.Fatalf("expected columns %v, got %v", wantCols, tbl.Columns)
	}
	for i := range tbl.Rows {
		if got := tbl.Value(i, domain.ColHolder); got != "张三" {
			t.Errorf("row %d: expected holder from sheet name, got %q", i, got)
		}
	}
}

func TestGenericAdapter_HeaderBelowBanner(t *testing.T) {
	file := sourceFile("测试银行/b.xls",
		memory.NewSheet("Sheet1",
			row("查询结果", "", ""),
			row("日期", "金额", "帐号"),
			row("2020-01-01", "1", "A1"),
			row("2020-01-02", "2", "A1"),
			row("2020-01-03", "3", "A1"),
		),
	)
	p := genericProfile(domain.WithSheetName(domain.SheetNameNone))

	res, err := usecase.NewGenericAdapter(p, usecase.DefaultOptions()).Parse(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Tables) != 1 || res.Tables[0].Len() != 3 {
		t.Fatalf("expected one table of 3 rows, got %+v", res.Tables)
	}
	if res.Tables[0].Has(domain.ColHolder) {
		t.Errorf("expected no holder column without a sheet name kind")
	}
}

func TestGenericAdapter_Tolerance(t *testing.T) {
	noData := memory.NewSheet("说明", row("x", "y"), row("1", "2"))
	emptyDates := memory.NewSheet("Sheet2", row("日期", "金额"), row("", "5"))

	tests := []struct {
		name       string
		opts       []domain.ProfileOption
		sheet      memory.Sheet
		wantFailed int
	}{
		{"no date column fails", nil, noData, 1},
		{"no date column tolerated", []domain.ProfileOption{domain.WithNoDataSheets(true)}, noData, 0},
		{"blank dates fail", nil, emptyDates, 1},
		{"blank dates tolerated", []domain.ProfileOption{domain.WithEmptySheets(true)}, emptyDates, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := usecase.NewGenericAdapter(genericProfile(tt.opts...), usecase.DefaultOptions())
			res, err := adapter.Parse(context.Background(), sourceFile("测试银行/c.xls", tt.sheet))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.FailedSheets) != tt.wantFailed {
				t.Errorf("expected %d failed sheets, got %v", tt.wantFailed, res.FailedSheets)
			}
			if len(res.Tables) != 0 {
				t.Errorf("expected no tables, got %d", len(res.Tables))
			}
		})
	}
}

func TestGenericAdapter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file := sourceFile("测试银行/d.xls", memory.NewSheet("Sheet1", row("日期"), row("2020-01-01")))
	_, err := usecase.NewGenericAdapter(genericProfile(), usecase.DefaultOptions()).Parse(ctx, file)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAdapterRegistry_Resolve(t *testing.T) {
	reg := usecase.NewAdapterRegistry()

	wantHandlers := []string{usecase.HandlerBannerSheet, usecase.HandlerDirectoryJoin, usecase.HandlerSectionedSheet}
	if got := reg.Handlers(); !reflect.DeepEqual(got, wantHandlers) {
		t.Fatalf("expected handlers %v, got %v", wantHandlers, got)
	}

	a, err := reg.Resolve(genericProfile(), usecase.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.(*usecase.GenericAdapter); !ok {
		t.Errorf("expected generic adapter, got %T", a)
	}

	unknown := domain.MustProfile("测试银行", domain.WithHandler("nope"))
	if _, err := reg.Resolve(unknown, usecase.Options{}); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile for unknown handler, got %v", err)
	}

	noLayout := domain.MustProfile("无布局银行", domain.WithHandler(usecase.HandlerBannerSheet))
	if _, err := reg.Resolve(noLayout, usecase.Options{}); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile for a missing layout, got %v", err)
	}

	called := false
	reg.Register("custom", func(p *domain.Profile, opts usecase.Options) (usecase.SourceAdapter, error) {
		called = true
		return usecase.NewGenericAdapter(p, opts), nil
	})
	custom := domain.MustProfile("测试银行", domain.WithHandler("custom"))
	if _, err := reg.Resolve(custom, usecase.Options{}); err != nil || !called {
		t.Errorf("expected custom factory to serve, called=%v err=%v", called, err)
	}
}
