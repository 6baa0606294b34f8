package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/pkg/scope"
)

// Token moves the session cookie, when present, into the request context.
// Outbound collaborator calls forward it as a bearer token.
func (m Middleware) Token() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, err := c.Cookie(m.cookieConfig.Name); err == nil && tok != "" {
			c.Request = c.Request.WithContext(scope.WithToken(c.Request.Context(), tok))
		}
		c.Next()
	}
}

// SetTokenCookie stores the opaque session token in the configured cookie.
func (m Middleware) SetTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(sameSite(m.cookieConfig.SameSite))
	c.SetCookie(m.cookieConfig.Name, token, m.cookieConfig.MaxAge, "/", m.cookieConfig.Domain, m.cookieConfig.Secure, m.cookieConfig.HTTPOnly)
}

// ClearTokenCookie expires the session cookie.
func (m Middleware) ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(sameSite(m.cookieConfig.SameSite))
	c.SetCookie(m.cookieConfig.Name, "", -1, "/", m.cookieConfig.Domain, m.cookieConfig.Secure, m.cookieConfig.HTTPOnly)
}

// HasToken reports whether the request carries a session token.
func (m Middleware) HasToken(c *gin.Context) bool {
	return scope.TokenFromContext(c.Request.Context()) != ""
}

// sameSite maps the configured mode. Unset means lax.
func sameSite(v string) http.SameSite {
	switch v {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
