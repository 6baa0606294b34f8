package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "https://dummyjson.com", cfg.Catalog.BaseURL)
	assert.Equal(t, cfg.Catalog.BaseURL, cfg.Auth.BaseURL)
	assert.Equal(t, time.Hour, cfg.Catalog.CategoriesTTL)
	assert.Equal(t, PageConfig{DefaultLimit: 12, MaxLimit: 100}, cfg.Pagination.Catalog)
	assert.Equal(t, PageConfig{DefaultLimit: 4, MaxLimit: 20}, cfg.Pagination.Related)
	assert.Equal(t, "token", cfg.Cookie.Name)
	assert.True(t, cfg.Cookie.HTTPOnly)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.Empty(t, cfg.HTTPServer.TrustedProxies)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("CATALOG_URL", "http://catalog.local:9000")
	t.Setenv("PAGINATION_CATALOG_DEFAULT_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://catalog.local:9000", cfg.Catalog.BaseURL)
	assert.Equal(t, 25, cfg.Pagination.Catalog.DefaultLimit)
}

func TestLoad_TrustedProxies(t *testing.T) {
	viper.Reset()
	t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.0/8 192.168.1.7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.7"}, cfg.HTTPServer.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Mode", "HTTP_SERVER_MODE", "verbose"},
		{"Catalog URL", "CATALOG_BASE_URL", "not a url"},
		{"Default Above Max", "PAGINATION_CART_DEFAULT_LIMIT", "500"},
		{"Same Site", "COOKIE_SAME_SITE", "sometimes"},
		{"Trusted Proxy", "HTTP_SERVER_TRUSTED_PROXIES", "not-an-address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
