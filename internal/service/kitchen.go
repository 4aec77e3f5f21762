package service

import (
	"context"
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

// DefaultMaxKitchens is how many kitchens stay in memory when no limit is given.
const DefaultMaxKitchens = 1000

// Kitchen is one isolated catalog: its recipes, its preferences and the
// document root those preferences are applied to.
type Kitchen struct {
	ID          string
	Recipes     *RecipeRepository
	Preferences *PreferenceController
	Root        *RootAttributes
}

// KitchenRegistry hands out the state of each kitchen, creating it on first
// use. At most maxKitchens are kept; the least recently used is dropped and
// reloaded from the store when it is next needed. It assumes this process is
// the only writer for its kitchens.
type KitchenRegistry struct {
	backend    store.Backend
	quotaBytes int

	mu       sync.Mutex
	kitchens *lru.Cache[string, *Kitchen]
}

func NewKitchenRegistry(backend store.Backend, quotaBytes int) *KitchenRegistry {
	return NewBoundedKitchenRegistry(backend, quotaBytes, DefaultMaxKitchens)
}

// NewBoundedKitchenRegistry keeps at most maxKitchens kitchens in memory.
func NewBoundedKitchenRegistry(backend store.Backend, quotaBytes, maxKitchens int) *KitchenRegistry {
	if maxKitchens <= 0 {
		maxKitchens = DefaultMaxKitchens
	}
	cache, err := lru.NewWithEvict(maxKitchens, func(id string, _ *Kitchen) {
		log.Printf("[KitchenRegistry] Evicted kitchen %s", id)
	})
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &KitchenRegistry{
		backend:    backend,
		quotaBytes: quotaBytes,
		kitchens:   cache,
	}
}

// Kitchen returns the kitchen with the given id.
func (r *KitchenRegistry) Kitchen(ctx context.Context, id string) *Kitchen {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k, ok := r.kitchens.Get(id); ok {
		return k
	}

	kv := store.WithQuota(store.Scoped(r.backend, id), r.quotaBytes)
	root := NewRootAttributes()
	k := &Kitchen{
		ID:          id,
		Recipes:     NewRecipeRepository(kv),
		Preferences: NewPreferenceController(ctx, kv, root),
		Root:        root,
	}
	r.kitchens.Add(id, k)
	return k
}

// Len is the number of kitchens held in memory.
func (r *KitchenRegistry) Len() int {
	return r.kitchens.Len()
}

// Ping checks the backing store.
func (r *KitchenRegistry) Ping(ctx context.Context) error {
	return r.backend.Ping(ctx)
}
