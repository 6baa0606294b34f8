package authapi

import "context"

// IAuthAPI is the auth collaborator surface used by the auth domain.
type IAuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (Response, error)
	Register(ctx context.Context, req RegisterRequest) (Response, error)
}

var _ IAuthAPI = (*Client)(nil)
