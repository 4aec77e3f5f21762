package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

// QuotaMessage is shown to the user when a recipe change could not be saved
// because storage is full.
const QuotaMessage = "Storage limit reached. Please delete some recipes before adding new ones."

var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrBuiltinImmutable = errors.New("built-in recipes cannot be changed")
)

// LoadResult is the merged view produced by Load. Corrupt is set when the
// stored user recipes could not be parsed and were replaced with an empty set.
type LoadResult struct {
	Recipes []model.Recipe
	Corrupt bool
}

// RecipeRepository owns the merged view of built-in and user recipes for one
// kitchen. Every mutation rewrites the whole user recipe record.
type RecipeRepository struct {
	kv store.KV

	mu      sync.Mutex
	recipes []model.Recipe
	loaded  bool
	corrupt bool
}

// NewRecipeRepository creates a repository backed by kv. Nothing is read until
// the first call.
func NewRecipeRepository(kv store.KV) *RecipeRepository {
	return &RecipeRepository{kv: kv}
}

// Load re-reads the stored user recipes and rebuilds the merged view: the
// built-ins first, then user recipes whose id doesn't collide with one. If the
// store can't be read the view holds only the built-ins and the next call
// reads again.
func (r *RecipeRepository) Load(ctx context.Context) LoadResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.load(ctx)
	return r.snapshot()
}

// List returns the merged view, loading it until a read succeeds.
func (r *RecipeRepository) List(ctx context.Context) LoadResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		_ = r.load(ctx)
	}
	return r.snapshot()
}

// Get returns the recipe with the given id. Built-ins are found even while
// the store is unreadable.
func (r *RecipeRepository) Get(ctx context.Context, id string) (model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.ensureLoaded(ctx)
	i := r.indexOf(id)
	if i < 0 && err != nil {
		return model.Recipe{}, err
	}
	if i < 0 {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return r.recipes[i].Clone(), nil
}

// Add stores draft as a new user recipe with a fresh id. A non-nil error
// wrapping store.ErrQuotaExceeded means the recipe was added but not saved;
// any other error means the stored recipes couldn't be read and nothing
// changed.
func (r *RecipeRepository) Add(ctx context.Context, draft model.RecipeDraft) (model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return model.Recipe{}, err
	}

	id := uuid.NewString()
	for r.indexOf(id) >= 0 {
		id = uuid.NewString()
	}
	recipe := draft.WithID(id)
	r.recipes = append(r.recipes, recipe)

	return recipe.Clone(), r.persist(ctx)
}

// Update replaces the user recipe with the same id. Built-ins can't be updated,
// and an unknown id leaves everything untouched.
func (r *RecipeRepository) Update(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	if model.IsBuiltinID(recipe.ID) {
		return model.Recipe{}, ErrBuiltinImmutable
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return model.Recipe{}, err
	}

	i := r.indexOf(recipe.ID)
	if i < 0 {
		return model.Recipe{}, ErrRecipeNotFound
	}
	updated := recipe.Clone()
	updated.IsDefault = false
	r.recipes[i] = updated

	return updated.Clone(), r.persist(ctx)
}

// Delete removes the user recipe with the given id. Built-ins are never
// removed and the stored record is left as it was.
func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	if model.IsBuiltinID(id) {
		return ErrBuiltinImmutable
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}

	i := r.indexOf(id)
	if i < 0 {
		return ErrRecipeNotFound
	}
	r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)

	return r.persist(ctx)
}

// ensureLoaded loads the view unless a previous read succeeded. Mutations
// must not run on a view that is missing the stored recipes, or persist would
// overwrite them. Must be called with mu held.
func (r *RecipeRepository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	if err := r.load(ctx); err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}
	return nil
}

// load must be called with mu held. An absent or malformed record counts as
// loaded; a read error leaves the view unloaded.
func (r *RecipeRepository) load(ctx context.Context) error {
	r.recipes = model.BuiltinRecipes()
	r.loaded = false
	r.corrupt = false

	stored, err := r.kv.Get(ctx, store.KeyRecipes)
	if errors.Is(err, store.ErrNotFound) {
		r.loaded = true
		return nil
	}
	if err != nil {
		log.Printf("[RecipeRepository] Error loading recipes: %v", err)
		return err
	}
	r.loaded = true

	var user []model.Recipe
	if err := json.Unmarshal([]byte(stored), &user); err != nil {
		log.Printf("[RecipeRepository] Stored recipes are malformed, using built-ins only: %v", err)
		r.corrupt = true
		return nil
	}

	for _, recipe := range user {
		// built-ins win; among user recipes the first occurrence wins
		if model.IsBuiltinID(recipe.ID) || r.indexOf(recipe.ID) >= 0 {
			continue
		}
		recipe.IsDefault = false
		r.recipes = append(r.recipes, recipe)
	}
	return nil
}

// persist rewrites the user-only subset. Failures are logged and never undo
// the in-memory change; only a quota failure is returned to the caller.
func (r *RecipeRepository) persist(ctx context.Context) error {
	user := make([]model.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		if !recipe.IsDefault {
			user = append(user, recipe)
		}
	}

	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("[RecipeRepository] Error encoding recipes: %v", err)
		return nil
	}

	if err := r.kv.Set(ctx, store.KeyRecipes, string(data)); err != nil {
		log.Printf("[RecipeRepository] Error saving recipes: %v", err)
		if errors.Is(err, store.ErrQuotaExceeded) {
			return fmt.Errorf("failed to save recipes: %w", err)
		}
	}
	return nil
}

func (r *RecipeRepository) indexOf(id string) int {
	for i := range r.recipes {
		if r.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *RecipeRepository) snapshot() LoadResult {
	out := make([]model.Recipe, len(r.recipes))
	for i := range r.recipes {
		out[i] = r.recipes[i].Clone()
	}
	return LoadResult{Recipes: out, Corrupt: r.corrupt}
}
