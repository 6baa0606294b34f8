// Package web serves the storefront HTML pages.
package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/middleware"
	"storefront/internal/render"
	"storefront/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler is the public interface for the HTML delivery layer.
type Handler interface {
	Catalog(c *gin.Context)
	Product(c *gin.Context)
	Cart(c *gin.Context)
	LoginForm(c *gin.Context)
	Login(c *gin.Context)
	RegisterForm(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l         log.Logger
	catalogUC catalog.UseCase
	cartUC    cart.UseCase
	authUC    auth.UseCase
	mw        middleware.Middleware
	limits    []int
}

// Config is the dependency bag passed to New().
type Config struct {
	Catalog catalog.UseCase
	Cart    cart.UseCase
	Auth    auth.UseCase
	// LimitChoices feed the page-size selector on the catalog page.
	LimitChoices []int
}

// New creates the HTML handler.
func New(l log.Logger, mw middleware.Middleware, cfg Config) Handler {
	limits := cfg.LimitChoices
	if len(limits) == 0 {
		limits = []int{12, 24, 48}
	}
	return &handler{
		l:         l,
		catalogUC: cfg.Catalog,
		cartUC:    cfg.Cart,
		authUC:    cfg.Auth,
		mw:        mw,
		limits:    limits,
	}
}

// Templates parses the embedded page templates for gin.Engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"price": render.FormatPrice,
	}).ParseFS(templateFS, "templates/*.html")
}

// RegisterRoutes maps HTML pages to Handler methods.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Catalog)
	r.GET("/products/:id", h.Product)
	r.GET("/carts/:id", h.Cart)

	r.GET("/login", h.LoginForm)
	r.POST("/login", mw.AuthRateLimit(), h.Login)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", mw.AuthRateLimit(), h.Register)
	r.POST("/logout", h.Logout)
}
