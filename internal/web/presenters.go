package web

import (
	"net/url"
	"strconv"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/render"
)

type page struct {
	Title    string
	LoggedIn bool
}

type catalogPage struct {
	page
	Grid         render.Grid
	Pager        render.PagerView
	Categories   []catalog.Category
	Category     string
	LimitChoices []int
}

type productPage struct {
	page
	Product      catalog.Product
	Discount     string
	Related      render.Grid
	RelatedPager render.PagerView
}

type cartPage struct {
	page
	Cart  cart.Cart
	Lines []cart.Line
	Pager render.PagerView
}

type authPage struct {
	page
	Action   string
	Register bool
	Name     string
	Email    string
	Error    string
	Notice   string
}

type errorPage struct {
	page
	Message string
}

// catalogURL is the base for catalog pager links. Category survives paging.
func catalogURL(category string) string {
	if category == "" {
		return "/"
	}
	return "/?" + url.Values{"category": {category}}.Encode()
}

func productURL(id int) string {
	return "/products/" + strconv.Itoa(id)
}

func cartURL(id int) string {
	return "/carts/" + strconv.Itoa(id)
}
