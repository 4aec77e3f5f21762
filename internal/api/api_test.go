package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return store.ErrUnavailable }

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := PerformRequest(ts.Router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", decode[map[string]interface{}](t, w)["status"])
	}

	r := gin.New()
	r.GET("/health", HealthCheck(downPinger{}))
	w := PerformRequest(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateKitchenIsolatesState(t *testing.T) {
	ts := setupTestServer(t)

	w := PerformRequest(ts.Router, http.MethodPost, "/api/v1/kitchens", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	kitchen := decode[KitchenResponse](t, w)
	require.NotEmpty(t, kitchen.Token)

	w = PerformRequestWithToken(ts.Router, http.MethodPost, "/api/v1/recipes", teaForm(), kitchen.Token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequestWithToken(ts.Router, http.MethodGet, "/api/v1/recipes", nil, kitchen.Token)
	assert.Equal(t, 4, decode[RecipeListResponse](t, w).Count)

	w = PerformRequest(ts.Router, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, 3, decode[RecipeListResponse](t, w).Count)

	// the token's kitchen is stored under its own namespace
	_, err := ts.Backend.Get(context.Background(), kitchen.KitchenID, store.KeyRecipes)
	assert.NoError(t, err)
}

func TestInvalidTokenRejected(t *testing.T) {
	ts := setupTestServer(t)

	w := PerformRequestWithToken(ts.Router, http.MethodGet, "/api/v1/recipes", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPreferences(t *testing.T) {
	ts := setupTestServer(t)

	w := PerformRequest(ts.Router, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[PreferencesResponse](t, w)
	assert.Equal(t, "light", string(resp.Preferences.Theme))
	assert.Len(t, resp.Fonts, 4)
	assert.Len(t, resp.ColorThemes, 4)
	assert.Equal(t, "#fdf5e6", resp.Palette.Cream)
	assert.Equal(t, "display", resp.Root.Attributes["data-font"])

	w = PerformRequest(ts.Router, http.MethodPut, "/api/v1/preferences", map[string]string{
		"theme":       "purple",
		"font":        "playfair",
		"color_theme": "ocean",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[PreferencesResponse](t, w)
	assert.Equal(t, []string{"theme"}, resp.Ignored)
	assert.Equal(t, "light", string(resp.Preferences.Theme))
	assert.Equal(t, "playfair", string(resp.Preferences.Font))
	assert.Equal(t, "ocean", string(resp.Preferences.ColorTheme))
	assert.Equal(t, "ocean", resp.Root.Attributes["data-color-theme"])

	w = PerformRequest(ts.Router, http.MethodPost, "/api/v1/preferences/theme/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[PreferencesResponse](t, w)
	assert.Equal(t, "dark", string(resp.Preferences.Theme))
	assert.Equal(t, "dark", resp.Root.Class)
	assert.Equal(t, "#1a2323", resp.Palette.Cream)

	stored, err := ts.Backend.Get(context.Background(), "default", store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)
}

func TestUpdatePreferencesBadBody(t *testing.T) {
	ts := setupTestServer(t)

	w := PerformRequest(ts.Router, http.MethodPut, "/api/v1/preferences", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// unreadableBackend accepts writes but can't be read.
type unreadableBackend struct {
	*store.MemoryBackend
}

func (unreadableBackend) Get(context.Context, string, string) (string, error) {
	return "", store.ErrUnavailable
}

func TestRecipeChangesRefusedWhileStoreUnreadable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	backend := unreadableBackend{store.NewMemoryBackend()}
	router := gin.New()
	RegisterRoutes(router, Services{
		Kitchens:       service.NewKitchenRegistry(backend, 0),
		Auth:           service.NewKitchenAuth(testSecret),
		Forms:          service.NewFormValidator(),
		Images:         service.NewImageService(nil),
		DefaultKitchen: "default",
	})

	w := PerformRequest(router, http.MethodPost, "/api/v1/recipes", teaForm())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())

	_, err := backend.MemoryBackend.Get(context.Background(), "default", store.KeyRecipes)
	assert.ErrorIs(t, err, store.ErrNotFound, "nothing was written")

	w = PerformRequest(router, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[RecipeListResponse](t, w).Count)
}
