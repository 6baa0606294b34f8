package http

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/session"
	"storefront/pkg/response"
)

// Create godoc
// @Summary     Open a view
// @Description Opens a paginated product view and fetches its first page. A failed fetch still creates the view; refresh it to retry.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Initial query"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Catalog unavailable, data holds the view"
// @Router      /api/v1/views [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
	}

	sess, v, err := h.store.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "store.Create %s: %v", sess.ID(), err)
		response.ErrorWithData(c, h.mapError(err), newViewResp(v))
		return
	}

	response.OK(c, newViewResp(v))
}

// Get godoc
// @Summary     Get a view
// @Description Returns what the view currently displays without fetching.
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/views/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newViewResp(sess.View()))
}

// Delete godoc
// @Summary     Close a view
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/views/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	response.OK(c, nil)
}

// Next godoc
// @Summary     Next page
// @Description Advances the view one page. A no-op on the last page.
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Catalog unavailable, data holds the view"
// @Router      /api/v1/views/{id}/next [POST]
func (h *handler) Next(c *gin.Context) {
	h.apply(c, session.Action{Kind: session.ActionNext})
}

// Prev godoc
// @Summary     Previous page
// @Description Moves the view back one page. A no-op on the first page.
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Catalog unavailable, data holds the view"
// @Router      /api/v1/views/{id}/prev [POST]
func (h *handler) Prev(c *gin.Context) {
	h.apply(c, session.Action{Kind: session.ActionPrev})
}

// Refresh godoc
// @Summary     Refresh
// @Description Refetches the current page.
// @Tags        Views
// @Produce     json
// @Param       id path string true "View ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Catalog unavailable, data holds the view"
// @Router      /api/v1/views/{id}/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	h.apply(c, session.Action{Kind: session.ActionRefresh})
}

// SetLimit godoc
// @Summary     Change page size
// @Description Sets the page size and returns to the first page.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       id   path string   true "View ID"
// @Param       body body limitReq true "Page size"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/views/{id}/limit [PUT]
func (h *handler) SetLimit(c *gin.Context) {
	var req limitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	h.apply(c, session.Action{Kind: session.ActionSetLimit, Limit: req.Limit})
}

// SetCategory godoc
// @Summary     Change category
// @Description Filters the view by category (empty clears) and returns to the first page.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       id   path string      true "View ID"
// @Param       body body categoryReq true "Category slug"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/views/{id}/category [PUT]
func (h *handler) SetCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	h.apply(c, session.Action{Kind: session.ActionSetCategory, Category: req.Category})
}

func (h *handler) apply(c *gin.Context, a session.Action) {
	ctx := c.Request.Context()

	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	v, err := sess.Apply(ctx, a)
	if err != nil {
		h.l.Warnf(ctx, "session.Apply %s %s: %v", sess.ID(), a.Kind, err)
		response.ErrorWithData(c, h.mapError(err), newViewResp(v))
		return
	}

	response.OK(c, newViewResp(v))
}
