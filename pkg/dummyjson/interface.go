package dummyjson

import "context"

// IDummyJSON is the read-only catalog collaborator.
// Implementations are safe for concurrent use.
type IDummyJSON interface {
	ListProducts(ctx context.Context, req ListProductsRequest) (ProductPage, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	GetCart(ctx context.Context, id int) (Cart, error)
}
