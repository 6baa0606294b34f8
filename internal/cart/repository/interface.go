package repository

import (
	"context"

	"storefront/internal/cart"
)

// Repository reads carts from the catalog collaborator.
type Repository interface {
	// GetCart returns a zero-value Cart (ID == 0) when it does not exist.
	GetCart(ctx context.Context, id int) (cart.Cart, error)
}
