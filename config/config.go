package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Catalog CatalogConfig
	Auth    AuthConfig

	// Storefront specifics
	Cookie     CookieConfig
	Pagination PaginationConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type HTTPServerConfig struct {
	Port            int    `validate:"required,min=1,max=65535"`
	Mode            string `validate:"required,oneof=debug release test"`
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are honoured. Empty trusts none.
	TrustedProxies []string `validate:"dive,cidr|ip"`
}

type LoggerConfig struct {
	Level        string `validate:"required"`
	Mode         string
	Encoding     string `validate:"omitempty,oneof=console json"`
	ColorEnabled bool
}

// CatalogConfig points at the remote product collection.
type CatalogConfig struct {
	BaseURL           string `validate:"required,url"`
	Timeout           time.Duration
	CategoriesTTL     time.Duration
	RequestsPerSecond float64 `validate:"min=0"`
}

// AuthConfig points at the remote auth API.
type AuthConfig struct {
	BaseURL      string `validate:"required,url"`
	LoginPath    string
	RegisterPath string
	Timeout      time.Duration
}

// CookieConfig describes the cookie that carries the opaque session token.
type CookieConfig struct {
	Name     string `validate:"required"`
	MaxAge   int    `validate:"min=0"`
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite string `validate:"omitempty,oneof=lax strict none"`
}

type PageConfig struct {
	DefaultLimit int `validate:"min=1"`
	MaxLimit     int `validate:"min=1,gtefield=DefaultLimit"`
}

type PaginationConfig struct {
	Catalog PageConfig
	Related PageConfig
	Cart    PageConfig
}

type SessionConfig struct {
	MaxSessions int `validate:"min=1"`
	TTL         time.Duration
}

type RateLimitConfig struct {
	AuthPerMin int `validate:"min=1"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Collaborators
	cfg.Catalog.BaseURL = viper.GetString("catalog.base_url")
	cfg.Catalog.Timeout = viper.GetDuration("catalog.timeout")
	cfg.Catalog.CategoriesTTL = viper.GetDuration("catalog.categories_ttl")
	cfg.Catalog.RequestsPerSecond = viper.GetFloat64("catalog.requests_per_second")
	if catalogURL := viper.GetString("catalog_url"); catalogURL != "" {
		cfg.Catalog.BaseURL = catalogURL
	}

	cfg.Auth.BaseURL = viper.GetString("auth.base_url")
	cfg.Auth.LoginPath = viper.GetString("auth.login_path")
	cfg.Auth.RegisterPath = viper.GetString("auth.register_path")
	cfg.Auth.Timeout = viper.GetDuration("auth.timeout")
	if authURL := viper.GetString("auth_url"); authURL != "" {
		cfg.Auth.BaseURL = authURL
	}
	// The auth API usually lives next to the catalog
	if cfg.Auth.BaseURL == "" {
		cfg.Auth.BaseURL = cfg.Catalog.BaseURL
	}

	// Cookie
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.HTTPOnly = viper.GetBool("cookie.http_only")
	cfg.Cookie.SameSite = strings.ToLower(viper.GetString("cookie.same_site"))

	// Pagination
	cfg.Pagination.Catalog = pageConfig("pagination.catalog")
	cfg.Pagination.Related = pageConfig("pagination.related")
	cfg.Pagination.Cart = pageConfig("pagination.cart")

	// Sessions & rate limiting
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.RateLimit.AuthPerMin = viper.GetInt("rate_limit.auth_per_min")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func pageConfig(prefix string) PageConfig {
	return PageConfig{
		DefaultLimit: viper.GetInt(prefix + ".default_limit"),
		MaxLimit:     viper.GetInt(prefix + ".max_limit"),
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("catalog.base_url", "https://dummyjson.com")
	viper.SetDefault("catalog.timeout", "10s")
	viper.SetDefault("catalog.categories_ttl", "1h")
	viper.SetDefault("catalog.requests_per_second", 20)
	viper.SetDefault("auth.login_path", "/auth/login")
	viper.SetDefault("auth.register_path", "/users/add")
	viper.SetDefault("auth.timeout", "10s")

	viper.SetDefault("cookie.name", "token")
	viper.SetDefault("cookie.max_age", 86400)
	viper.SetDefault("cookie.http_only", true)
	viper.SetDefault("cookie.same_site", "lax")

	viper.SetDefault("pagination.catalog.default_limit", 12)
	viper.SetDefault("pagination.catalog.max_limit", 100)
	viper.SetDefault("pagination.related.default_limit", 4)
	viper.SetDefault("pagination.related.max_limit", 20)
	viper.SetDefault("pagination.cart.default_limit", 5)
	viper.SetDefault("pagination.cart.max_limit", 50)

	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("rate_limit.auth_per_min", 30)
}
