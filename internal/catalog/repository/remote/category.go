package remote

import (
	"context"
	"fmt"

	"storefront/internal/catalog"
)

// ListCategories fetches the category list.
func (r *implRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	res, err := r.client.ListCategories(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, fmt.Errorf("%s: %w", r.dsn("ListCategories"), err)
	}

	cats := make([]catalog.Category, 0, len(res))
	for _, c := range res {
		name := c.Name
		if name == "" {
			name = c.Slug
		}
		cats = append(cats, catalog.Category{Slug: c.Slug, Name: name})
	}
	return cats, nil
}
