package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
	"storefront/pkg/response"
)

type mockUseCase struct {
	listOut   catalog.ListOutput
	detailOut catalog.DetailOutput
	cats      []catalog.Category
	err       error

	lastState  pagination.QueryState
	lastDetail catalog.DetailInput
}

func (m *mockUseCase) List(ctx context.Context, state pagination.QueryState) (catalog.ListOutput, error) {
	m.lastState = state
	return m.listOut, m.err
}

func (m *mockUseCase) Browse(ctx context.Context, state pagination.QueryState) (catalog.BrowseOutput, error) {
	return catalog.BrowseOutput{List: m.listOut, Categories: m.cats}, m.err
}

func (m *mockUseCase) FetchPage(ctx context.Context, state pagination.QueryState) (catalog.Page, error) {
	return m.listOut.Page, m.err
}

func (m *mockUseCase) Categories(ctx context.Context) ([]catalog.Category, error) {
	return m.cats, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, input catalog.DetailInput) (catalog.DetailOutput, error) {
	m.lastDetail = input
	return m.detailOut, m.err
}

func setupRouter(uc catalog.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

func doGet(r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Resp) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{listOut: catalog.ListOutput{
			Page: catalog.Page{Items: []catalog.Product{{ID: 1, Title: "Phone"}}, Total: 57, Limit: 25},
			Pager: pagination.Snapshot{
				State: pagination.QueryState{Limit: 25}, Total: 57, HasNext: true, PageNumber: 1, PageCount: 3,
			},
		}}
		w, resp := doGet(setupRouter(uc), "/api/v1/products?limit=25&skip=0&category=phones")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, pagination.QueryState{Limit: 25, Category: "phones"}, uc.lastState)

		data := resp.Data.(map[string]interface{})
		pg := data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(57), pg["total"])
		assert.Equal(t, true, pg["has_next"])
		assert.Len(t, data["products"], 1)
	})

	t.Run("Non Numeric Limit", func(t *testing.T) {
		w, _ := doGet(setupRouter(&mockUseCase{}), "/api/v1/products?limit=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Upstream Unavailable", func(t *testing.T) {
		uc := &mockUseCase{err: fmt.Errorf("repo: %w", &dummyjson.UnavailableError{Op: "ListProducts", StatusCode: 503})}
		w, resp := doGet(setupRouter(uc), "/api/v1/products")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "catalog unavailable", resp.Message)
	})

	t.Run("Upstream Malformed", func(t *testing.T) {
		uc := &mockUseCase{err: &dummyjson.MalformedResponseError{Op: "ListProducts", Reason: "missing total"}}
		w, _ := doGet(setupRouter(uc), "/api/v1/products")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestCategories(t *testing.T) {
	uc := &mockUseCase{cats: []catalog.Category{{Slug: "beauty", Name: "Beauty"}}}
	w, resp := doGet(setupRouter(uc), "/api/v1/products/categories")
	require.Equal(t, http.StatusOK, w.Code)

	cats := resp.Data.(map[string]interface{})["categories"].([]interface{})
	require.Len(t, cats, 1)
	assert.Equal(t, "beauty", cats[0].(map[string]interface{})["slug"])
}

func TestDetail(t *testing.T) {
	t.Run("Success With Related Paging", func(t *testing.T) {
		uc := &mockUseCase{detailOut: catalog.DetailOutput{Product: catalog.Product{ID: 7, Category: "beauty"}}}
		w, _ := doGet(setupRouter(uc), "/api/v1/products/7?rlimit=4&rskip=8")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, uc.lastDetail.ID)
		assert.Equal(t, pagination.QueryState{Limit: 4, Skip: 8}, uc.lastDetail.Related)
	})

	t.Run("Related Error Reported Inline", func(t *testing.T) {
		uc := &mockUseCase{detailOut: catalog.DetailOutput{
			Product:    catalog.Product{ID: 7},
			RelatedErr: &dummyjson.UnavailableError{Op: "ListProducts"},
		}}
		w, resp := doGet(setupRouter(uc), "/api/v1/products/7")
		require.Equal(t, http.StatusOK, w.Code)
		related := resp.Data.(map[string]interface{})["related"].(map[string]interface{})
		assert.Equal(t, "catalog unavailable", related["error"])
	})

	t.Run("Not Found", func(t *testing.T) {
		w, _ := doGet(setupRouter(&mockUseCase{err: catalog.ErrProductNotFound}), "/api/v1/products/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		w, _ := doGet(setupRouter(&mockUseCase{}), "/api/v1/products/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Error", func(t *testing.T) {
		w, _ := doGet(setupRouter(&mockUseCase{err: fmt.Errorf("boom")}), "/api/v1/products/1")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
