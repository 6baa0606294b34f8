package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"storefront/internal/catalog"
	"storefront/internal/catalog/repository"
	"storefront/internal/pagination"
	"storefront/pkg/log"
)

const (
	categoriesKey        = "categories"
	defaultCategoriesTTL = 30 * time.Minute
)

// Config parameterises the catalog use cases.
type Config struct {
	CatalogPaging pagination.Options
	RelatedPaging pagination.Options
	CategoriesTTL time.Duration
}

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	cfg  Config

	categories *expirable.LRU[string, []catalog.Category]
	group      singleflight.Group
}

var _ catalog.UseCase = (*implUseCase)(nil)

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	if cfg.CategoriesTTL <= 0 {
		cfg.CategoriesTTL = defaultCategoriesTTL
	}
	if cfg.CatalogPaging.DefaultLimit <= 0 {
		cfg.CatalogPaging = pagination.CatalogOptions
	}
	if cfg.RelatedPaging.DefaultLimit <= 0 {
		cfg.RelatedPaging = pagination.RelatedOptions
	}

	return &implUseCase{
		repo:       repo,
		l:          l,
		cfg:        cfg,
		categories: expirable.NewLRU[string, []catalog.Category](1, nil, cfg.CategoriesTTL),
	}
}
