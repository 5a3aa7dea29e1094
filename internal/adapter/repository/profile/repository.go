// Package profile holds the institution profile registry: the builtin
// profiles plus overrides loaded from a YAML file.
package profile

import (
	"fmt"
	"sort"
	"sync"

	"github.com/iho/bankledger/internal/domain"
)

// Repository implements usecase.ProfileRepository.
type Repository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
}

// NewRepository creates a repository holding the given profiles.
func NewRepository(profiles ...*domain.Profile) *Repository {
	r := &Repository{profiles: make(map[string]*domain.Profile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.Name()] = p
	}
	return r
}

// NewBuiltinRepository creates a repository holding the builtin profiles.
func NewBuiltinRepository() *Repository {
	return NewRepository(Builtin()...)
}

// FindByName returns the profile of an institution directory.
func (r *Repository) FindByName(name string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedInstitution, name)
	}
	return p, nil
}

// List returns every profile sorted by name.
func (r *Repository) List() []*domain.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Put adds or replaces a profile.
func (r *Repository) Put(p *domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Name()] = p
}
