package http

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/pkg/log"
)

// Handler is the public interface for the catalog JSON delivery layer.
type Handler interface {
	List(c *gin.Context)
	Categories(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
