package http

import "storefront/internal/auth"

type loginReq struct {
	Email    string `json:"email"    binding:"required,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type registerReq struct {
	Name     string `json:"name"     binding:"required,max=128"`
	Email    string `json:"email"    binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type authResp struct {
	Message  string `json:"message,omitempty"`
	LoggedIn bool   `json:"logged_in"`
}

func (h *handler) newAuthResp(out auth.Output) authResp {
	return authResp{Message: out.Message, LoggedIn: out.Token != ""}
}
