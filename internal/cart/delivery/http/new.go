package http

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/pkg/log"
)

// Handler is the public interface for the cart JSON delivery layer.
type Handler interface {
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc cart.UseCase
}

// New creates a new HTTP handler for the cart domain.
func New(l log.Logger, uc cart.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/carts/:id", h.Detail)
}
