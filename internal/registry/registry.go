package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/XavierBriggs/Janus/pkg/contracts"
)

// SportRegistry manages the sport modules the dashboard can present
type SportRegistry struct {
	sports map[string]contracts.SportModule
	mu     sync.RWMutex
}

// NewSportRegistry creates a registry holding the given modules
func NewSportRegistry(modules ...contracts.SportModule) (*SportRegistry, error) {
	r := &SportRegistry{
		sports: make(map[string]contracts.SportModule),
	}
	for _, m := range modules {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a sport module to the registry
func (r *SportRegistry) Register(sport contracts.SportModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sportKey := sport.GetSportKey()
	if _, exists := r.sports[sportKey]; exists {
		return fmt.Errorf("sport %s is already registered", sportKey)
	}

	r.sports[sportKey] = sport
	return nil
}

// Resolve returns the module for a sport key or an error naming the known keys
func (r *SportRegistry) Resolve(sportKey string) (contracts.SportModule, error) {
	r.mu.RLock()
	sport, exists := r.sports[sportKey]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown sport %q (registered: %s)", sportKey, strings.Join(r.Keys(), ", "))
	}
	return sport, nil
}

// Keys returns the registered sport keys in sorted order
func (r *SportRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.sports))
	for k := range r.sports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of registered sports
func (r *SportRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sports)
}
