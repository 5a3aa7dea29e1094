package domain

import "fmt"

// Verdict is the outcome of validating one institution.
type Verdict struct {
	Institution string
	HasMistakes bool
	Reasons     []string
}

// NewVerdict starts a passing verdict.
func NewVerdict(institution string) *Verdict {
	return &Verdict{Institution: institution}
}

// Warn records a finding and marks the verdict as failed.
func (v *Verdict) Warn(format string, args ...any) {
	v.HasMistakes = true
	v.Reasons = append(v.Reasons, fmt.Sprintf(format, args...))
}

// Passed reports whether no finding was recorded.
func (v *Verdict) Passed() bool {
	return !v.HasMistakes
}
