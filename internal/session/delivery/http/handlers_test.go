package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
	"storefront/internal/session"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

type fakeFetcher struct {
	mu    sync.Mutex
	total int
	err   error
}

func (f *fakeFetcher) FetchPage(ctx context.Context, state pagination.QueryState) (catalog.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return catalog.Page{}, f.err
	}
	start, end := pagination.Window(f.total, state)
	items := make([]catalog.Product, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, catalog.Product{ID: i + 1, Category: state.Category})
	}
	return catalog.Page{Items: items, Total: f.total, Skip: state.Skip, Limit: state.Limit}, nil
}

func (f *fakeFetcher) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type viewEnvelope struct {
	ErrorCode int      `json:"error_code"`
	Data      viewResp `json:"data"`
}

func setup(t *testing.T, f *fakeFetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := session.NewStore(f, log.NewNop(), session.Config{
		Paging: pagination.Options{DefaultLimit: 25, MaxLimit: 100},
	})
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), store))
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, body string) (int, viewEnvelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env viewEnvelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func TestViewLifecycle(t *testing.T) {
	r := setup(t, &fakeFetcher{total: 57})

	code, env := call(t, r, http.MethodPost, "/api/v1/views", "")
	require.Equal(t, http.StatusOK, code)
	id := env.Data.ID
	require.NotEmpty(t, id)
	assert.Len(t, env.Data.Grid.Cells, 25)
	assert.Equal(t, 3, env.Data.Pagination.PageCount)

	base := "/api/v1/views/" + id

	_, env = call(t, r, http.MethodPost, base+"/next", "")
	assert.Equal(t, 25, env.Data.Pagination.Skip)

	_, env = call(t, r, http.MethodPost, base+"/next", "")
	assert.Equal(t, 50, env.Data.Pagination.Skip)
	assert.Len(t, env.Data.Grid.Cells, 7)
	assert.False(t, env.Data.Pagination.HasNext)

	_, env = call(t, r, http.MethodPut, base+"/limit", `{"limit":10}`)
	assert.Equal(t, 0, env.Data.Pagination.Skip)
	assert.Equal(t, 10, env.Data.Pagination.Limit)

	_, env = call(t, r, http.MethodPut, base+"/category", `{"category":"beauty"}`)
	assert.Equal(t, "beauty", env.Data.Pagination.Category)
	assert.Equal(t, "beauty", env.Data.Grid.Cells[0].Category)

	code, env = call(t, r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "beauty", env.Data.Pagination.Category)

	code, _ = call(t, r, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestViewErrors(t *testing.T) {
	t.Run("Unknown View", func(t *testing.T) {
		code, _ := call(t, setup(t, &fakeFetcher{}), http.MethodPost, "/api/v1/views/nope/next", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		r := setup(t, &fakeFetcher{total: 5})
		_, env := call(t, r, http.MethodPost, "/api/v1/views", "")
		code, _ := call(t, r, http.MethodPut, "/api/v1/views/"+env.Data.ID+"/limit", `{"limit":0}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Upstream Failure Keeps View", func(t *testing.T) {
		f := &fakeFetcher{total: 57}
		r := setup(t, f)
		_, env := call(t, r, http.MethodPost, "/api/v1/views", "")

		f.fail(&dummyjson.UnavailableError{Op: "ListProducts", StatusCode: 503})
		code, env := call(t, r, http.MethodPost, "/api/v1/views/"+env.Data.ID+"/next", "")
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, "unavailable", string(env.Data.Grid.State))
		assert.False(t, env.Data.Pagination.HasNext)
		assert.False(t, env.Data.Pagination.HasPrev)
	})

	t.Run("Create With Upstream Down", func(t *testing.T) {
		f := &fakeFetcher{err: &dummyjson.MalformedResponseError{Op: "ListProducts", Reason: "missing total"}}
		code, env := call(t, setup(t, f), http.MethodPost, "/api/v1/views", `{"limit":10}`)
		assert.Equal(t, http.StatusBadGateway, code)
		assert.NotEmpty(t, env.Data.ID)
	})
}
