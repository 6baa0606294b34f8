package http

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Forwards the credentials to the auth service and stores the returned token in the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Rejected"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Auth service unavailable"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.mw.SetTokenCookie(c, output.Token)
	response.OK(c, h.newAuthResp(output))
}

// Register godoc
// @Summary     Register
// @Description Creates an account through the auth service. The session cookie is set when a token is returned.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Rejected"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Auth service unavailable"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if output.Token != "" {
		h.mw.SetTokenCookie(c, output.Token)
	}
	response.OK(c, h.newAuthResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.mw.ClearTokenCookie(c)
	response.OK(c, nil)
}
