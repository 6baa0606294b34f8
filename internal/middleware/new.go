package middleware

import (
	"storefront/config"
	"storefront/pkg/log"
)

type Middleware struct {
	l            log.Logger
	cookieConfig config.CookieConfig
	authLimiter  *rateLimiter
}

// New creates the shared middleware set. authPerMin bounds login and
// registration attempts per client IP.
func New(l log.Logger, cookieConfig config.CookieConfig, authPerMin int) Middleware {
	return Middleware{
		l:            l,
		cookieConfig: cookieConfig,
		authLimiter:  newRateLimiter(authPerMin),
	}
}
