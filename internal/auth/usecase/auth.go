package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/auth"
	"storefront/pkg/authapi"
)

// Login forwards the credentials and returns the opaque session token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.Output, error) {
	res, err := uc.api.Login(ctx, authapi.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Login: %v", err)
		return auth.Output{}, translate(err)
	}

	token := res.SessionToken()
	if token == "" {
		uc.l.Errorf(ctx, "uc.Login: %v", auth.ErrMissingToken)
		return auth.Output{}, auth.ErrMissingToken
	}
	return auth.Output{Token: token, Message: res.Message}, nil
}

// Register creates an account. A token is passed through when the
// collaborator signs the user in immediately.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.Output, error) {
	res, err := uc.api.Register(ctx, authapi.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Register: %v", err)
		return auth.Output{}, translate(err)
	}
	return auth.Output{Token: res.SessionToken(), Message: res.Message}, nil
}

func translate(err error) error {
	var rej *authapi.RejectedError
	if errors.As(err, &rej) {
		if rej.Message != "" {
			return fmt.Errorf("%w: %s", auth.ErrRejected, rej.Message)
		}
		return auth.ErrRejected
	}
	return fmt.Errorf("%w: %v", auth.ErrUnavailable, err)
}
