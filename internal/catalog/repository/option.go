package repository

// ListProductsOptions holds filter and pagination parameters for listing products.
type ListProductsOptions struct {
	Category string
	Limit    int
	Skip     int
}
