package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"swastik-storefront/cart"
	"swastik-storefront/catalog"
	"swastik-storefront/config"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type memoryBackend struct {
	values map[string]string
}

func (m *memoryBackend) Load(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryBackend) Save(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memoryBackend) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func setupTestRouter() *gin.Engine {
	r := gin.New()
	store := cart.NewStore(&memoryBackend{values: make(map[string]string)})
	SetupRoutes(r, catalog.NewStatic(), store, config.Settings{ShopName: "Swastik Furnitures"})
	return r
}

func TestRoutesAreRegistered(t *testing.T) {
	router := setupTestRouter()

	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/api/home"},
		{"POST", "/api/home/carousel/next"},
		{"GET", "/api/settings"},
		{"GET", "/api/products"},
		{"GET", "/api/products/101"},
		{"GET", "/api/bestsellers"},
		{"GET", "/api/search"},
		{"GET", "/api/cart"},
		{"GET", "/api/cart/totals"},
		{"POST", "/api/contact"},
		{"GET", "/health"},
	}

	for _, e := range endpoints {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(e.method, e.path, nil))
		if w.Code == http.StatusNotFound {
			t.Errorf("%s %s is not registered", e.method, e.path)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestCheckoutIsRateLimited(t *testing.T) {
	router := setupTestRouter()

	// The empty-cart 400 still consumes a token; after the budget the
	// limiter answers instead of the handler.
	var sawLimit bool
	for i := 0; i < 11; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/checkout", nil))
		if w.Code == http.StatusTooManyRequests {
			sawLimit = true
			break
		}
	}
	if !sawLimit {
		t.Error("Expected the checkout endpoint to rate limit after its budget")
	}
}

func TestUnknownRoute(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/orders", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}
