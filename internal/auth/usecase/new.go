package usecase

import (
	"storefront/internal/auth"
	"storefront/pkg/authapi"
	"storefront/pkg/log"
)

type implUseCase struct {
	api authapi.IAuthAPI
	l   log.Logger
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates a new auth UseCase implementation.
func New(api authapi.IAuthAPI, l log.Logger) *implUseCase {
	return &implUseCase{api: api, l: l}
}
