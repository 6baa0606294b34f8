package http

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/response"
)

// List godoc
// @Summary     List products
// @Description Returns one page of products, optionally filtered by category. Out-of-range offsets are pulled back to the last page.
// @Tags        Catalog
// @Produce     json
// @Param       limit    query int    false "Page size (default: 12, max: 100)"
// @Param       skip     query int    false "Offset, aligned down to a multiple of limit"
// @Param       category query string false "Category slug"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Categories godoc
// @Summary     List categories
// @Description Returns the category selector entries.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} categoriesResp
// @Failure     502 {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/products/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	cats, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoriesResp(cats))
}

// Detail godoc
// @Summary     Get product detail
// @Description Returns a product and one page of related products from its category. A related-products failure is reported inline.
// @Tags        Catalog
// @Produce     json
// @Param       id     path  int true  "Product ID"
// @Param       rlimit query int false "Related page size (default: 4, max: 20)"
// @Param       rskip  query int false "Related offset"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}
