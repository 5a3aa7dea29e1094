package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the pipeline metrics and implements usecase.MetricsRecorder.
type Metrics struct {
	registry *prometheus.Registry

	// Institution metrics
	Institutions        *prometheus.CounterVec
	InstitutionDuration prometheus.Histogram

	// File and sheet metrics
	Files  *prometheus.CounterVec
	Sheets *prometheus.CounterVec

	// Row metrics
	Rows *prometheus.CounterVec

	// Verdict metrics
	Verdicts *prometheus.CounterVec

	// Cache metrics
	CacheLookups *prometheus.CounterVec
}

// New creates the metrics and registers them on a fresh registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry creates the metrics and registers them on registry.
func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,

		Institutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_institutions_total",
				Help: "Total institutions processed by status",
			},
			[]string{"status"},
		),
		InstitutionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_institution_duration_seconds",
			Help:    "Duration of institution processing",
			Buckets: prometheus.DefBuckets,
		}),

		Files: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_files_total",
				Help: "Total statement files processed by status",
			},
			[]string{"status"},
		),
		Sheets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_sheets_total",
				Help: "Total sheets processed by status",
			},
			[]string{"status"},
		),

		Rows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_rows_total",
				Help: "Total rows by pipeline stage",
			},
			[]string{"stage"},
		),

		Verdicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_verdicts_total",
				Help: "Total verdicts by result",
			},
			[]string{"passed"},
		),

		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_cache_lookups_total",
				Help: "Total parse cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) InstitutionProcessed(status string, duration time.Duration) {
	m.Institutions.WithLabelValues(status).Inc()
	if duration > 0 {
		m.InstitutionDuration.Observe(duration.Seconds())
	}
}

func (m *Metrics) FileProcessed(status string) {
	m.Files.WithLabelValues(status).Inc()
}

func (m *Metrics) SheetsProcessed(status string, n int) {
	m.Sheets.WithLabelValues(status).Add(float64(n))
}

func (m *Metrics) RowsProcessed(stage string, n int) {
	m.Rows.WithLabelValues(stage).Add(float64(n))
}

func (m *Metrics) VerdictRecorded(passed bool) {
	m.Verdicts.WithLabelValues(strconv.FormatBool(passed)).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// WriteFile writes the metrics in the text exposition format, for a node
// exporter textfile collector to pick up.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
