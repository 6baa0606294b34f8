package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/pagination"
	"storefront/internal/render"
	"storefront/pkg/dummyjson"
)

const (
	messageNotFound   = "We could not find what you were looking for."
	messageBadRequest = "That request was not valid."
)

type listQuery struct {
	Limit    int    `form:"limit"`
	Skip     int    `form:"skip"`
	Category string `form:"category" binding:"max=64"`
}

type detailQuery struct {
	ID           int `uri:"id" binding:"required"`
	RelatedLimit int `form:"rlimit"`
	RelatedSkip  int `form:"rskip"`
}

type cartQuery struct {
	ID    int `uri:"id" binding:"required"`
	Limit int `form:"limit"`
	Skip  int `form:"skip"`
}

func (h *handler) page(c *gin.Context, title string) page {
	return page{Title: title, LoggedIn: h.mw.HasToken(c)}
}

// Catalog renders the product grid with the category selector.
func (h *handler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid request", messageBadRequest)
		return
	}

	data := catalogPage{
		page:         h.page(c, "Products"),
		Category:     q.Category,
		LimitChoices: h.limits,
	}

	out, err := h.catalogUC.Browse(ctx, pagination.QueryState{Limit: q.Limit, Skip: q.Skip, Category: q.Category})
	if err != nil {
		h.l.Errorf(ctx, "web.Catalog uc.Browse: %v", err)
		data.Grid = render.RenderError(err)
		data.Pager = render.DisabledPager()
		c.HTML(statusFor(err), "catalog.html", data)
		return
	}
	if out.CategoriesErr != nil {
		h.l.Warnf(ctx, "web.Catalog categories hidden: %v", out.CategoriesErr)
	}

	snap := out.List.Pager
	data.Grid = render.Render(out.List.Page)
	data.Pager = render.Pager(snap, catalogURL(snap.State.Category), "skip", "limit")
	data.Categories = out.Categories
	data.Category = snap.State.Category
	c.HTML(http.StatusOK, "catalog.html", data)
}

// Product renders one product and a page of related products.
func (h *handler) Product(c *gin.Context) {
	ctx := c.Request.Context()

	var q detailQuery
	if err := c.ShouldBindUri(&q); err != nil {
		h.renderError(c, http.StatusNotFound, "Not found", messageNotFound)
		return
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid request", messageBadRequest)
		return
	}

	out, err := h.catalogUC.Detail(ctx, catalog.DetailInput{
		ID:      q.ID,
		Related: pagination.QueryState{Limit: q.RelatedLimit, Skip: q.RelatedSkip},
	})
	if err != nil {
		h.l.Errorf(ctx, "web.Product uc.Detail: %v", err)
		h.renderDomainError(c, err)
		return
	}

	data := productPage{
		page:     h.page(c, out.Product.Title),
		Product:  out.Product,
		Discount: render.Discount(out.Product.DiscountPercentage),
	}
	if out.RelatedErr != nil {
		data.Related = render.RenderError(out.RelatedErr)
		data.RelatedPager = render.DisabledPager()
	} else {
		data.Related = render.Render(out.Related)
		data.RelatedPager = render.Pager(out.RelatedPager, productURL(out.Product.ID), "rskip", "rlimit")
	}
	c.HTML(http.StatusOK, "product.html", data)
}

// Cart renders a cart with one page of its lines.
func (h *handler) Cart(c *gin.Context) {
	ctx := c.Request.Context()

	var q cartQuery
	if err := c.ShouldBindUri(&q); err != nil {
		h.renderError(c, http.StatusNotFound, "Not found", messageNotFound)
		return
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid request", messageBadRequest)
		return
	}

	out, err := h.cartUC.Detail(ctx, cart.DetailInput{
		ID:    q.ID,
		Lines: pagination.QueryState{Limit: q.Limit, Skip: q.Skip},
	})
	if err != nil {
		h.l.Errorf(ctx, "web.Cart uc.Detail: %v", err)
		h.renderDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "cart.html", cartPage{
		page:  h.page(c, "Cart"),
		Cart:  out.Cart,
		Lines: out.Lines,
		Pager: render.Pager(out.Pager, cartURL(out.Cart.ID), "skip", "limit"),
	})
}

func (h *handler) renderError(c *gin.Context, status int, title, message string) {
	c.HTML(status, "error.html", errorPage{
		page:    h.page(c, title),
		Message: message,
	})
}

func (h *handler) renderDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, cart.ErrCartNotFound):
		h.renderError(c, http.StatusNotFound, "Not found", messageNotFound)
	case errors.Is(err, catalog.ErrInvalidID), errors.Is(err, cart.ErrInvalidID):
		h.renderError(c, http.StatusBadRequest, "Invalid request", messageBadRequest)
	default:
		h.renderError(c, statusFor(err), "Unavailable", render.MessageUnavailable)
	}
}

func statusFor(err error) int {
	if errors.Is(err, dummyjson.ErrUnavailable) || errors.Is(err, dummyjson.ErrMalformedResponse) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
