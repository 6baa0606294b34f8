package http

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/session"
	"storefront/pkg/log"
)

// Handler is the public interface for the view-session JSON delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Next(c *gin.Context)
	Prev(c *gin.Context)
	Refresh(c *gin.Context)
	SetLimit(c *gin.Context)
	SetCategory(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l     log.Logger
	store *session.Store
}

// New creates a new HTTP handler over a session store.
func New(l log.Logger, store *session.Store) Handler {
	return &handler{l: l, store: store}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	views := rg.Group("/views")
	{
		views.POST("", h.Create)
		views.GET("/:id", h.Get)
		views.DELETE("/:id", h.Delete)
		views.POST("/:id/next", h.Next)
		views.POST("/:id/prev", h.Prev)
		views.POST("/:id/refresh", h.Refresh)
		views.PUT("/:id/limit", h.SetLimit)
		views.PUT("/:id/category", h.SetCategory)
	}
}
