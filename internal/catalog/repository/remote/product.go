package remote

import (
	"context"
	"fmt"

	"storefront/internal/catalog"
	repo "storefront/internal/catalog/repository"
	"storefront/pkg/dummyjson"
)

// ListProducts fetches one page of products. Collaborator errors are wrapped
// so callers can still match dummyjson.ErrUnavailable / ErrMalformedResponse.
func (r *implRepository) ListProducts(ctx context.Context, opt repo.ListProductsOptions) (catalog.Page, error) {
	res, err := r.client.ListProducts(ctx, dummyjson.ListProductsRequest{
		Limit:    opt.Limit,
		Skip:     opt.Skip,
		Category: opt.Category,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProducts"), err)
		return catalog.Page{}, fmt.Errorf("%s: %w", r.dsn("ListProducts"), err)
	}

	items := make([]catalog.Product, 0, len(res.Products))
	for _, p := range res.Products {
		items = append(items, toProduct(p))
	}

	// Echoed paging fields are informational; trust what was asked for when
	// the collaborator leaves them out.
	skip, limit := res.Skip, res.Limit
	if limit <= 0 {
		limit = opt.Limit
		skip = opt.Skip
	}
	if len(items) > limit && limit > 0 {
		items = items[:limit]
	}

	return catalog.Page{
		Items: items,
		Total: res.Total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

// GetProduct retrieves a single product by ID.
// Returns zero-value Product (ID == 0) when not found.
func (r *implRepository) GetProduct(ctx context.Context, id int) (catalog.Product, error) {
	p, err := r.client.GetProduct(ctx, id)
	if dummyjson.IsNotFound(err) {
		return catalog.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProduct"), err)
		return catalog.Product{}, fmt.Errorf("%s: %w", r.dsn("GetProduct"), err)
	}
	return toProduct(p), nil
}

func toProduct(p dummyjson.Product) catalog.Product {
	return catalog.Product{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Category:           p.Category,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
	}
}
