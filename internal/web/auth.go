package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
)

const (
	messageRegistered      = "Account created. You can log in now."
	messageAuthUnavailable = "The sign-in service is unavailable. Please try again later."
	messageMissingFields   = "Please fill in every field."
)

type loginForm struct {
	Email    string `form:"email"    binding:"required,max=254"`
	Password string `form:"password" binding:"required,max=128"`
}

type registerForm struct {
	Name     string `form:"name"     binding:"required,max=128"`
	Email    string `form:"email"    binding:"required,email,max=254"`
	Password string `form:"password" binding:"required,min=6,max=128"`
}

func (h *handler) loginPage(c *gin.Context) authPage {
	return authPage{page: h.page(c, "Log in"), Action: "/login"}
}

func (h *handler) registerPage(c *gin.Context) authPage {
	return authPage{page: h.page(c, "Register"), Action: "/register", Register: true}
}

// LoginForm renders the login form.
func (h *handler) LoginForm(c *gin.Context) {
	data := h.loginPage(c)
	if c.Query("registered") != "" {
		data.Notice = messageRegistered
	}
	c.HTML(http.StatusOK, "auth.html", data)
}

// Login posts the credentials and, on success, stores the token and
// redirects to the catalog.
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	data := h.loginPage(c)

	var f loginForm
	if err := c.ShouldBind(&f); err != nil {
		data.Email = f.Email
		data.Error = messageMissingFields
		c.HTML(http.StatusBadRequest, "auth.html", data)
		return
	}
	data.Email = f.Email

	out, err := h.authUC.Login(ctx, auth.LoginInput{Email: f.Email, Password: f.Password})
	if err != nil {
		status, msg := authFailure(err)
		data.Error = msg
		c.HTML(status, "auth.html", data)
		return
	}

	h.mw.SetTokenCookie(c, out.Token)
	c.Redirect(http.StatusSeeOther, "/")
}

// RegisterForm renders the registration form.
func (h *handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", h.registerPage(c))
}

// Register creates the account. When the collaborator signs the user in
// directly the token is stored; otherwise the user is sent to log in.
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	data := h.registerPage(c)

	var f registerForm
	if err := c.ShouldBind(&f); err != nil {
		data.Name, data.Email = f.Name, f.Email
		data.Error = messageMissingFields
		c.HTML(http.StatusBadRequest, "auth.html", data)
		return
	}
	data.Name, data.Email = f.Name, f.Email

	out, err := h.authUC.Register(ctx, auth.RegisterInput{Name: f.Name, Email: f.Email, Password: f.Password})
	if err != nil {
		status, msg := authFailure(err)
		data.Error = msg
		c.HTML(status, "auth.html", data)
		return
	}

	if out.Token != "" {
		h.mw.SetTokenCookie(c, out.Token)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// Logout clears the session cookie.
func (h *handler) Logout(c *gin.Context) {
	h.mw.ClearTokenCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func authFailure(err error) (int, string) {
	if errors.Is(err, auth.ErrRejected) {
		msg := strings.TrimPrefix(err.Error(), auth.ErrRejected.Error())
		msg = strings.TrimPrefix(msg, ": ")
		if msg == "" {
			msg = "Those details were not accepted."
		}
		return http.StatusUnauthorized, msg
	}
	return http.StatusBadGateway, messageAuthUnavailable
}
