package httpserver

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/pkg/authapi"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

type fakeCatalog struct {
	catErr error
}

func (f *fakeCatalog) ListProducts(ctx context.Context, req dummyjson.ListProductsRequest) (dummyjson.ProductPage, error) {
	items := []dummyjson.Product{{ID: 1, Title: "Phone", Category: "smartphones", Price: 10}}
	return dummyjson.ProductPage{Products: items, Total: 1, Skip: req.Skip, Limit: req.Limit}, nil
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]dummyjson.Category, error) {
	return []dummyjson.Category{{Slug: "smartphones", Name: "Smartphones"}}, f.catErr
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int) (dummyjson.Product, error) {
	return dummyjson.Product{ID: id, Title: "Phone", Category: "smartphones"}, nil
}

func (f *fakeCatalog) GetCart(ctx context.Context, id int) (dummyjson.Cart, error) {
	return dummyjson.Cart{ID: id}, nil
}

type fakeAuth struct{}

func (fakeAuth) Login(ctx context.Context, req authapi.LoginRequest) (authapi.Response, error) {
	return authapi.Response{Token: "tok"}, nil
}

func (fakeAuth) Register(ctx context.Context, req authapi.RegisterRequest) (authapi.Response, error) {
	return authapi.Response{}, nil
}

func newTestServer(t *testing.T, catalog *fakeCatalog) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:          8080,
		Mode:          "test",
		Environment:   "test",
		CatalogClient: catalog,
		AuthClient:    fakeAuth{},
		Cookie:        config.CookieConfig{Name: "token", MaxAge: 60},
		Pagination: config.PaginationConfig{
			Catalog: config.PageConfig{DefaultLimit: 12, MaxLimit: 100},
			Related: config.PageConfig{DefaultLimit: 4, MaxLimit: 20},
			Cart:    config.PageConfig{DefaultLimit: 5, MaxLimit: 50},
		},
		RateLimit: config.RateLimitConfig{AuthPerMin: 60},
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, &fakeCatalog{})

	for _, path := range []string{"/health", "/live", "/ready", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := serve(srv, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("Request ID", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/health", nil)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestReadyCheck_CatalogDown(t *testing.T) {
	srv := newTestServer(t, &fakeCatalog{catErr: &dummyjson.UnavailableError{Op: "ListCategories", StatusCode: 503}})
	w := serve(srv, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, &fakeCatalog{})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/products?limit=5", http.StatusOK},
		{http.MethodGet, "/api/v1/products/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/products/1", http.StatusOK},
		{http.MethodGet, "/api/v1/carts/1", http.StatusOK},
		{http.MethodPost, "/api/v1/views", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/products/1", http.StatusOK},
		{http.MethodGet, "/carts/1", http.StatusOK},
		{http.MethodGet, "/login", http.StatusOK},
		{http.MethodGet, "/register", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(srv, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestGzip(t *testing.T) {
	srv := newTestServer(t, &fakeCatalog{})
	w := serve(srv, http.MethodGet, "/", map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Phone")
}

func TestLimitChoices(t *testing.T) {
	assert.Equal(t, []int{12, 24, 48}, limitChoices(config.PageConfig{DefaultLimit: 12, MaxLimit: 100}))
	assert.Equal(t, []int{25, 50}, limitChoices(config.PageConfig{DefaultLimit: 25, MaxLimit: 50}))
	assert.Nil(t, limitChoices(config.PageConfig{}))
}

func TestAuthRateLimit_IgnoresUntrustedForwardedFor(t *testing.T) {
	srv := newTestServer(t, &fakeCatalog{})

	// 60 per minute gives a burst of 6, all from the same peer.
	var last int
	for i := 0; i < 7; i++ {
		w := serve(srv, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"X-Forwarded-For": fmt.Sprintf("198.51.100.%d", i),
		})
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestNew_InvalidTrustedProxies(t *testing.T) {
	_, err := New(log.NewNop(), Config{
		Port:           8080,
		Mode:           "test",
		CatalogClient:  &fakeCatalog{},
		AuthClient:     fakeAuth{},
		TrustedProxies: []string{"not-an-address"},
	})
	assert.Error(t, err)
}
