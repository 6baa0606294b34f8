package scope

import "context"

type tokenKey struct{}

// WithToken returns a copy of ctx carrying the caller's opaque auth token.
// The token is never interpreted, only forwarded to collaborators.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}
