package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/auth"
	"storefront/internal/auth/usecase"
	"storefront/pkg/authapi"
	"storefront/pkg/log"
)

type mockAPI struct {
	res authapi.Response
	err error

	lastLogin    authapi.LoginRequest
	lastRegister authapi.RegisterRequest
}

func (m *mockAPI) Login(ctx context.Context, req authapi.LoginRequest) (authapi.Response, error) {
	m.lastLogin = req
	return m.res, m.err
}

func (m *mockAPI) Register(ctx context.Context, req authapi.RegisterRequest) (authapi.Response, error) {
	m.lastRegister = req
	return m.res, m.err
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Token Returned", func(t *testing.T) {
		api := &mockAPI{res: authapi.Response{AccessToken: "tok"}}
		out, err := usecase.New(api, log.NewNop()).Login(ctx, auth.LoginInput{Email: "a@b.c", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
		assert.Equal(t, "a@b.c", api.lastLogin.Email)
	})

	t.Run("Rejected Keeps Message", func(t *testing.T) {
		api := &mockAPI{err: &authapi.RejectedError{StatusCode: 400, Message: "Invalid credentials"}}
		_, err := usecase.New(api, log.NewNop()).Login(ctx, auth.LoginInput{})
		require.ErrorIs(t, err, auth.ErrRejected)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("Unavailable", func(t *testing.T) {
		api := &mockAPI{err: errors.New("dial tcp: refused")}
		_, err := usecase.New(api, log.NewNop()).Login(ctx, auth.LoginInput{})
		assert.ErrorIs(t, err, auth.ErrUnavailable)
	})

	t.Run("Missing Token", func(t *testing.T) {
		api := &mockAPI{res: authapi.Response{Message: "ok"}}
		_, err := usecase.New(api, log.NewNop()).Login(ctx, auth.LoginInput{})
		assert.ErrorIs(t, err, auth.ErrMissingToken)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Message Only", func(t *testing.T) {
		api := &mockAPI{res: authapi.Response{Message: "Account created"}}
		out, err := usecase.New(api, log.NewNop()).Register(ctx, auth.RegisterInput{Name: "n", Email: "e", Password: "p"})
		require.NoError(t, err)
		assert.Empty(t, out.Token)
		assert.Equal(t, "Account created", out.Message)
		assert.Equal(t, "n", api.lastRegister.Name)
	})

	t.Run("Rejected Without Message", func(t *testing.T) {
		api := &mockAPI{err: &authapi.RejectedError{StatusCode: 409}}
		_, err := usecase.New(api, log.NewNop()).Register(ctx, auth.RegisterInput{})
		assert.ErrorIs(t, err, auth.ErrRejected)
	})
}
