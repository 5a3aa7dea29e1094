package usecase_test

import (
	"testing"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func TestLocateHeader(t *testing.T) {
	header := row("交易日期", "交易金额", "余额")
	banner := row("户名：张三", "", "")

	tests := []struct {
		name       string
		grid       domain.Grid
		probes     int
		wantRow    int
		wantStatus usecase.HeaderStatus
	}{
		{
			name:       "header on first row",
			grid:       domain.Grid{header, row("2020-01-01", "1", "2")},
			probes:     3,
			wantRow:    0,
			wantStatus: usecase.HeaderFound,
		},
		{
			name:       "header below one banner row",
			grid:       domain.Grid{banner, header, row("2020-01-01", "1", "2")},
			probes:     3,
			wantRow:    1,
			wantStatus: usecase.HeaderFound,
		},
		{
			name:       "header on last probe",
			grid:       domain.Grid{banner, banner, header},
			probes:     3,
			wantRow:    2,
			wantStatus: usecase.HeaderFound,
		},
		{
			name:       "header beyond probes",
			grid:       domain.Grid{banner, banner, banner, header},
			probes:     3,
			wantStatus: usecase.HeaderUnparsable,
		},
		{
			name:       "sheet ends before a header",
			grid:       domain.Grid{banner},
			probes:     3,
			wantStatus: usecase.HeaderUnparsable,
		},
		{
			name:       "single column sheet",
			grid:       domain.Grid{row("交易日期"), row("2020-01-01")},
			probes:     3,
			wantRow:    0,
			wantStatus: usecase.HeaderFound,
		},
		{
			name:       "no rows",
			grid:       domain.Grid{},
			probes:     3,
			wantStatus: usecase.HeaderEmpty,
		},
		{
			name:       "only blank cells",
			grid:       domain.Grid{row("", " "), row("")},
			probes:     3,
			wantStatus: usecase.HeaderEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := usecase.LocateHeader(tt.grid, tt.probes)
			if status != tt.wantStatus {
				t.Fatalf("expected status %s, got %s", tt.wantStatus, status)
			}
			if status == usecase.HeaderFound && got != tt.wantRow {
				t.Errorf("expected header row %d, got %d", tt.wantRow, got)
			}
		})
	}
}
