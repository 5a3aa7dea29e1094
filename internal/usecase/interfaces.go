package usecase

import (
	"context"
	"time"

	"github.com/iho/bankledger/internal/domain"
)

// SourceReader opens raw file contents as a workbook. name is used for
// format detection only.
type SourceReader interface {
	Open(ctx context.Context, name string, data []byte) (Workbook, error)
}

// Workbook is an opened spreadsheet-like container.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) (domain.Grid, error)
	Close() error
}

// ProfileRepository resolves institution profiles by directory name.
type ProfileRepository interface {
	FindByName(name string) (*domain.Profile, error)
	List() []*domain.Profile
}

// ParseCache stores adapter results keyed by institution and file content.
type ParseCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*FileResult, error)
	Set(ctx context.Context, key string, result *FileResult) error
}

// Retrier retries transient failures of an operation.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder receives pipeline counters.
type MetricsRecorder interface {
	InstitutionProcessed(status string, duration time.Duration)
	FileProcessed(status string)
	SheetsProcessed(status string, n int)
	RowsProcessed(stage string, n int)
	VerdictRecorded(passed bool)
	CacheLookup(hit bool)
}

type noopMetrics struct{}

func (noopMetrics) InstitutionProcessed(string, time.Duration) {}
func (noopMetrics) FileProcessed(string)                       {}
func (noopMetrics) SheetsProcessed(string, int)                {}
func (noopMetrics) RowsProcessed(string, int)                  {}
func (noopMetrics) VerdictRecorded(bool)                       {}
func (noopMetrics) CacheLookup(bool)                           {}
