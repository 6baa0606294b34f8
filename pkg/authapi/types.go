package authapi

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of the registration call.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is what the auth collaborator answers. Any field may be empty.
// Newer collaborator versions name the token accessToken.
type Response struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

// SessionToken returns whichever token field the collaborator filled in.
func (r Response) SessionToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}
