package catalog

import "storefront/internal/pagination"

// --- Domain Model ---

// Product is a catalog item as presented by the storefront.
type Product struct {
	ID                 int
	Title              string
	Description        string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Brand              string
	Category           string
	Thumbnail          string
	Images             []string
}

// Page is one fetched batch of products with its pagination metadata.
// Items never holds more than Limit products.
type Page struct {
	Items []Product
	Total int
	Skip  int
	Limit int
}

// Category is a product category usable as a server-side filter.
type Category struct {
	Slug string
	Name string
}

// --- UseCase Inputs ---

type DetailInput struct {
	ID      int
	Related pagination.QueryState
}

// --- UseCase Outputs ---

type ListOutput struct {
	Page  Page
	Pager pagination.Snapshot
}

type BrowseOutput struct {
	List          ListOutput
	Categories    []Category
	CategoriesErr error
}

type DetailOutput struct {
	Product      Product
	Related      Page
	RelatedPager pagination.Snapshot
	RelatedErr   error
}
