package providers

import (
	"context"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
)

// RetailerAPI is the capability every retailer adapter provides:
// translate a generic search into the retailer's API and normalize
// the response into the common grocery shapes.
type RetailerAPI interface {
	// Key is the stable identifier used for store-scoped searches
	Key() string
	// Name is the human-readable retailer name
	Name() string
	SearchItems(ctx context.Context, params grocery.SearchParams) (*grocery.SearchResult, error)
	GetStores(ctx context.Context, location string) ([]grocery.Store, error)
}

// Registry holds the retailer adapters configured at startup.
// Lookup by key is the only dynamic dispatch; an unknown key is the
// caller's "unsupported store" error.
type Registry struct {
	order    []string
	adapters map[string]RetailerAPI
}

// NewRegistry creates a registry from the given adapters, preserving
// registration order for deterministic fan-out
func NewRegistry(adapters ...RetailerAPI) *Registry {
	r := &Registry{
		adapters: make(map[string]RetailerAPI, len(adapters)),
	}
	for _, a := range adapters {
		if _, exists := r.adapters[a.Key()]; exists {
			continue
		}
		r.order = append(r.order, a.Key())
		r.adapters[a.Key()] = a
	}
	return r
}

// Get returns the adapter registered under key
func (r *Registry) Get(key string) (RetailerAPI, bool) {
	a, ok := r.adapters[key]
	return a, ok
}

// All returns every adapter in registration order
func (r *Registry) All() []RetailerAPI {
	out := make([]RetailerAPI, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.adapters[key])
	}
	return out
}

// Keys returns the registered adapter keys in registration order
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
