package http

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/middleware"
	"storefront/pkg/log"
)

// Handler is the public interface for the auth JSON delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
	mw middleware.Middleware
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, mw middleware.Middleware) Handler {
	return &handler{l: l, uc: uc, mw: mw}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/login", mw.AuthRateLimit(), h.Login)
		a.POST("/register", mw.AuthRateLimit(), h.Register)
		a.POST("/logout", h.Logout)
	}
}
