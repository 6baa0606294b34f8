package auth

import "errors"

var (
	ErrRejected     = errors.New("credentials rejected")
	ErrUnavailable  = errors.New("auth service unavailable")
	ErrMissingToken = errors.New("auth service returned no token")
)
