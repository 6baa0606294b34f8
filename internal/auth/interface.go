package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (Output, error)
	Register(ctx context.Context, input RegisterInput) (Output, error)
}
