package usecase

import (
	"storefront/internal/cart"
	"storefront/internal/cart/repository"
	"storefront/internal/pagination"
	"storefront/pkg/log"
)

// implUseCase is the private implementation of cart.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	paging pagination.Options
}

var _ cart.UseCase = (*implUseCase)(nil)

// New creates a new cart UseCase implementation.
func New(repo repository.Repository, l log.Logger, paging pagination.Options) *implUseCase {
	if paging.DefaultLimit <= 0 {
		paging = pagination.CartOptions
	}
	return &implUseCase{
		repo:   repo,
		l:      l,
		paging: paging,
	}
}
