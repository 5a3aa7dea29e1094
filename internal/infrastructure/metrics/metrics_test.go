package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry)

	if m.Institutions == nil || m.Rows == nil || m.Verdicts == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.FileProcessed("ok")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecorderCounts(t *testing.T) {
	m := New()

	m.InstitutionProcessed("ok", 2*time.Second)
	m.InstitutionProcessed("unsupported", 0)
	m.SheetsProcessed("ok", 3)
	m.SheetsProcessed("failed", 0)
	m.RowsProcessed("seen", 10)
	m.RowsProcessed("kept", 8)
	m.VerdictRecorded(false)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"institutions ok", testutil.ToFloat64(m.Institutions.WithLabelValues("ok")), 1},
		{"institutions unsupported", testutil.ToFloat64(m.Institutions.WithLabelValues("unsupported")), 1},
		{"sheets ok", testutil.ToFloat64(m.Sheets.WithLabelValues("ok")), 3},
		{"rows seen", testutil.ToFloat64(m.Rows.WithLabelValues("seen")), 10},
		{"rows kept", testutil.ToFloat64(m.Rows.WithLabelValues("kept")), 8},
		{"verdicts failed", testutil.ToFloat64(m.Verdicts.WithLabelValues("false")), 1},
		{"cache hits", testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 1},
		{"cache misses", testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if n := testutil.CollectAndCount(m.InstitutionDuration); n != 1 {
		t.Errorf("expected one duration histogram, got %d", n)
	}
}

func TestWriteFile(t *testing.T) {
	m := New()
	m.FileProcessed("failed")

	path := filepath.Join(t.TempDir(), "bankledger.prom")
	if err := m.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(data), `bankledger_files_total{status="failed"} 1`) {
		t.Fatalf("expected file counter in textfile, got:\n%s", data)
	}
}
