package http

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/response"
)

// Detail godoc
// @Summary     Get cart
// @Description Returns a cart with one page of its lines. Totals cover the whole cart.
// @Tags        Cart
// @Produce     json
// @Param       id    path  int true  "Cart ID"
// @Param       limit query int false "Lines per page (default: 5, max: 50)"
// @Param       skip  query int false "Line offset"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/carts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, errInvalidID)
		return
	}
	if err := c.ShouldBindQuery(&req); err != nil {
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
