package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"storefront/internal/catalog"
	repo "storefront/internal/catalog/repository"
	"storefront/internal/pagination"
)

// FetchPage issues exactly one fetch for state. Pages are never cached.
func (uc *implUseCase) FetchPage(ctx context.Context, state pagination.QueryState) (catalog.Page, error) {
	return uc.repo.ListProducts(ctx, repo.ListProductsOptions{
		Category: state.Category,
		Limit:    state.Limit,
		Skip:     state.Skip,
	})
}

// List returns the page selected by state. When the requested offset lies
// past the end of the collection the controller pulls it back to the last
// page and that page is fetched instead.
func (uc *implUseCase) List(ctx context.Context, state pagination.QueryState) (catalog.ListOutput, error) {
	ctrl := pagination.New(uc.cfg.CatalogPaging, state)

	page, err := uc.fetchObserved(ctx, ctrl)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List fetchObserved: %v", err)
		return catalog.ListOutput{}, err
	}

	return catalog.ListOutput{
		Page:  page,
		Pager: ctrl.Snapshot(),
	}, nil
}

// fetchObserved fetches ctrl's page and lets ctrl observe the total,
// refetching once if the offset had to be clamped.
func (uc *implUseCase) fetchObserved(ctx context.Context, ctrl *pagination.Controller) (catalog.Page, error) {
	page, err := uc.FetchPage(ctx, ctrl.State())
	if err != nil {
		return catalog.Page{}, err
	}

	requested := ctrl.State().Skip
	ctrl.Observe(page.Total)
	if ctrl.State().Skip == requested {
		return page, nil
	}

	uc.l.Debugf(ctx, "uc.fetchObserved: skip %d past total %d, refetching at %d", requested, page.Total, ctrl.State().Skip)
	page, err = uc.FetchPage(ctx, ctrl.State())
	if err != nil {
		return catalog.Page{}, err
	}
	ctrl.Observe(page.Total)
	return page, nil
}

// Browse fetches the product page and the category selector concurrently.
// Only the product page is required; a category failure hides the selector.
func (uc *implUseCase) Browse(ctx context.Context, state pagination.QueryState) (catalog.BrowseOutput, error) {
	var out catalog.BrowseOutput

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.List(gCtx, state)
		if err != nil {
			return err
		}
		out.List = list
		return nil
	})
	g.Go(func() error {
		cats, err := uc.Categories(gCtx)
		if err != nil {
			out.CategoriesErr = err
			return nil
		}
		out.Categories = cats
		return nil
	})

	if err := g.Wait(); err != nil {
		return catalog.BrowseOutput{}, err
	}
	return out, nil
}
