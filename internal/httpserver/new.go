package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"storefront/config"
	"storefront/pkg/authapi"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	trustedProxies  []string
	registry        *prometheus.Registry

	// Collaborators
	catalogClient dummyjson.IDummyJSON
	authClient    authapi.IAuthAPI

	// Storefront settings
	categoriesTTL time.Duration
	cookie        config.CookieConfig
	pagination    config.PaginationConfig
	session       config.SessionConfig
	rateLimit     config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string

	CatalogClient dummyjson.IDummyJSON
	AuthClient    authapi.IAuthAPI
	CategoriesTTL time.Duration

	Cookie     config.CookieConfig
	Pagination config.PaginationConfig
	Session    config.SessionConfig
	RateLimit  config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		trustedProxies:  cfg.TrustedProxies,
		registry:        prometheus.NewRegistry(),
		catalogClient:   cfg.CatalogClient,
		authClient:      cfg.AuthClient,
		categoriesTTL:   cfg.CategoriesTTL,
		cookie:          cfg.Cookie,
		pagination:      cfg.Pagination,
		session:         cfg.Session,
		rateLimit:       cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// gin trusts every proxy unless told otherwise.
	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogClient == nil {
		return errors.New("catalog client is required")
	}
	if srv.authClient == nil {
		return errors.New("auth client is required")
	}
	return nil
}
