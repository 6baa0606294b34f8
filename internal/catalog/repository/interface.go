package repository

import (
	"context"

	"storefront/internal/catalog"
)

// Repository is the composed interface for the catalog data source.
type Repository interface {
	ProductRepository
	CategoryRepository
}

// ProductRepository reads products from the catalog collaborator.
type ProductRepository interface {
	ListProducts(ctx context.Context, opt ListProductsOptions) (catalog.Page, error)
	// GetProduct returns a zero-value Product (ID == 0) when it does not exist.
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
}

// CategoryRepository reads the category list.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
}
