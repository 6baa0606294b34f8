package cart

import "storefront/internal/pagination"

// Cart is a remote cart with all its lines.
type Cart struct {
	ID              int
	UserID          int
	Lines           []Line
	Total           float64
	DiscountedTotal float64
	TotalProducts   int
	TotalQuantity   int
}

// Line is one product in a cart.
type Line struct {
	ProductID          int
	Title              string
	Price              float64
	Quantity           int
	Total              float64
	DiscountPercentage float64
	DiscountedTotal    float64
	Thumbnail          string
}

type DetailInput struct {
	ID    int
	Lines pagination.QueryState
}

// DetailOutput holds one page of lines; the totals cover the whole cart.
type DetailOutput struct {
	Cart  Cart
	Lines []Line
	Pager pagination.Snapshot
}
