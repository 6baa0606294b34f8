package dummyjson

// ListProductsRequest selects one page of products. A non-empty Category is
// sent to the collaborator as a path filter.
type ListProductsRequest struct {
	Limit    int
	Skip     int
	Category string
}

// Product is the catalog product object.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// ProductPage is a decoded /products response.
type ProductPage struct {
	Products []Product
	Total    int
	Skip     int
	Limit    int
}

// productsEnvelope uses pointers so missing fields can be told apart from zero values.
type productsEnvelope struct {
	Products *[]Product `json:"products"`
	Total    *int       `json:"total"`
	Skip     int        `json:"skip"`
	Limit    int        `json:"limit"`
}

// Category is a product category. Older collaborator versions only return
// the slug.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Cart is the /carts/{id} object.
type Cart struct {
	ID              int           `json:"id"`
	UserID          int           `json:"userId"`
	Products        []CartProduct `json:"products"`
	Total           float64       `json:"total"`
	DiscountedTotal float64       `json:"discountedTotal"`
	TotalProducts   int           `json:"totalProducts"`
	TotalQuantity   int           `json:"totalQuantity"`
}

// CartProduct is one cart line.
type CartProduct struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Total              float64 `json:"total"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountedTotal    float64 `json:"discountedTotal"`
	Thumbnail          string  `json:"thumbnail"`
}
