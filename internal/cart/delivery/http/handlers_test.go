package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

type mockUseCase struct {
	out  cart.DetailOutput
	err  error
	last cart.DetailInput
}

func (m *mockUseCase) Detail(ctx context.Context, input cart.DetailInput) (cart.DetailOutput, error) {
	m.last = input
	return m.out, m.err
}

func TestDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{"Success", "/api/v1/carts/1?limit=5&skip=5", nil, http.StatusOK},
		{"Invalid ID", "/api/v1/carts/x", nil, http.StatusBadRequest},
		{"Not Found", "/api/v1/carts/99", cart.ErrCartNotFound, http.StatusNotFound},
		{"Upstream", "/api/v1/carts/1", &dummyjson.UnavailableError{Op: "GetCart", StatusCode: 500}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			r := gin.New()
			RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.name == "Success" && (uc.last.ID != 1 || uc.last.Lines.Skip != 5) {
				t.Errorf("unexpected input: %+v", uc.last)
			}
		})
	}
}
