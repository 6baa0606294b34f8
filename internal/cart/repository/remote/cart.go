package remote

import (
	"context"
	"fmt"

	"storefront/internal/cart"
	"storefront/internal/cart/repository"
	"storefront/pkg/dummyjson"
	"storefront/pkg/log"
)

type implRepository struct {
	client dummyjson.IDummyJSON
	l      log.Logger
}

// New creates a cart Repository backed by the remote catalog collaborator.
func New(client dummyjson.IDummyJSON, l log.Logger) repository.Repository {
	if client == nil {
		panic("cart/repository/remote: client is required")
	}
	return &implRepository{client: client, l: l}
}

// GetCart retrieves a cart by ID. Returns zero-value Cart when not found.
func (r *implRepository) GetCart(ctx context.Context, id int) (cart.Cart, error) {
	res, err := r.client.GetCart(ctx, id)
	if dummyjson.IsNotFound(err) {
		return cart.Cart{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/remote.GetCart: %v", err)
		return cart.Cart{}, fmt.Errorf("cart/repository/remote.GetCart: %w", err)
	}

	lines := make([]cart.Line, 0, len(res.Products))
	for _, p := range res.Products {
		lines = append(lines, cart.Line{
			ProductID:          p.ID,
			Title:              p.Title,
			Price:              p.Price,
			Quantity:           p.Quantity,
			Total:              p.Total,
			DiscountPercentage: p.DiscountPercentage,
			DiscountedTotal:    p.DiscountedTotal,
			Thumbnail:          p.Thumbnail,
		})
	}

	return cart.Cart{
		ID:              res.ID,
		UserID:          res.UserID,
		Lines:           lines,
		Total:           res.Total,
		DiscountedTotal: res.DiscountedTotal,
		TotalProducts:   res.TotalProducts,
		TotalQuantity:   res.TotalQuantity,
	}, nil
}
