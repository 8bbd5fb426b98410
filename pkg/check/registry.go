package check

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered checks.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Check
	byName map[string]Check
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Check),
		byName: make(map[string]Check),
	}
}

// Register adds a check to the registry.
// If a check with the same ID already exists, it is replaced.
func (r *Registry) Register(c Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID()] = c
	r.byName[c.Name()] = c
}

// Get retrieves a check by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byID[key]; ok {
		return c, true
	}
	if c, ok := r.byName[key]; ok {
		return c, true
	}
	return nil, false
}

// GetByID retrieves a check by its ID only.
func (r *Registry) GetByID(id string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// Checks returns all registered checks, sorted by ID.
// The sort order fixes the presentation order of findings in a report.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Check, 0, len(r.byID))
	for _, c := range r.byID {
		result = append(result, c)
	}

	slices.SortFunc(result, func(a, b Check) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered check IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in checks.
// Checks register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for check registration
var DefaultRegistry = NewRegistry()
