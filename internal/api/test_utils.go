package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

const testSecret = "test-secret"

// testServer is a router over an in-memory store.
type testServer struct {
	Router   *gin.Engine
	Backend  *store.MemoryBackend
	Kitchens *service.KitchenRegistry
	Auth     *service.KitchenAuth
}

func setupTestServer(t *testing.T) *testServer {
	return setupTestServerWithQuota(t, 0)
}

func setupTestServerWithQuota(t *testing.T, quota int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := store.NewMemoryBackend()
	ts := &testServer{
		Router:   gin.New(),
		Backend:  backend,
		Kitchens: service.NewKitchenRegistry(backend, quota),
		Auth:     service.NewKitchenAuth(testSecret),
	}
	RegisterRoutes(ts.Router, Services{
		Kitchens:       ts.Kitchens,
		Auth:           ts.Auth,
		Forms:          service.NewFormValidator(),
		Images:         service.NewImageService(nil),
		DefaultKitchen: "default",
	})
	return ts
}

// PerformRequest sends a JSON request to the default kitchen.
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	return PerformRequestWithToken(router, method, path, body, "")
}

// PerformRequestWithToken sends a JSON request with a kitchen token, if any.
func PerformRequestWithToken(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return out
}

func teaForm() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Tea",
		"tag":         "Drink",
		"description": "A warm cup for a rainy afternoon.",
		"image":       "https://example.com/tea.jpg",
		"time":        "5 min",
		"serves":      "1",
		"ingredients": []string{"Water", "", "Tea leaves"},
		"steps":       []string{"Boil water", "Steep"},
	}
}
