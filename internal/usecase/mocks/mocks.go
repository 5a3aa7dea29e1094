package mocks

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iho/bankledger/internal/domain"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile

	FindByNameFunc func(name string) (*domain.Profile, error)
}

func NewMockProfileRepository(profiles ...*domain.Profile) *MockProfileRepository {
	m := &MockProfileRepository{profiles: make(map[string]*domain.Profile)}
	for _, p := range profiles {
		m.profiles[p.Name()] = p
	}
	return m
}

func (m *MockProfileRepository) FindByName(name string) (*domain.Profile, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.profiles[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedInstitution, name)
}

func (m *MockProfileRepository) List() []*domain.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-run-%d", m.counter)
}

// MockMetricsRecorder counts the recorded events by label.
type MockMetricsRecorder struct {
	mu           sync.Mutex
	Institutions map[string]int
	Files        map[string]int
	Sheets       map[string]int
	Rows         map[string]int
	Verdicts     map[bool]int
	CacheHits    int
	CacheMisses  int
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{
		Institutions: make(map[string]int),
		Files:        make(map[string]int),
		Sheets:       make(map[string]int),
		Rows:         make(map[string]int),
		Verdicts:     make(map[bool]int),
	}
}

func (m *MockMetricsRecorder) InstitutionProcessed(status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Institutions[status]++
}

func (m *MockMetricsRecorder) FileProcessed(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[status]++
}

func (m *MockMetricsRecorder) SheetsProcessed(status string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sheets[status] += n
}

func (m *MockMetricsRecorder) RowsProcessed(stage string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rows[stage] += n
}

func (m *MockMetricsRecorder) VerdictRecorded(passed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Verdicts[passed]++
}

func (m *MockMetricsRecorder) CacheLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.CacheHits++
	} else {
		m.CacheMisses++
	}
}
