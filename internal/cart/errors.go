package cart

import "errors"

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrInvalidID    = errors.New("invalid cart id")
)
