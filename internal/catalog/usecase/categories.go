package usecase

import (
	"context"

	"storefront/internal/catalog"
)

// Categories returns the category list, sourced once per TTL. Concurrent
// misses share a single collaborator call. The shared call is detached from
// any one caller's cancellation; a cancelled caller stops waiting but the
// others still get the result.
func (uc *implUseCase) Categories(ctx context.Context) ([]catalog.Category, error) {
	if cats, ok := uc.categories.Get(categoriesKey); ok {
		return cats, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(categoriesKey, func() (any, error) {
		if cats, ok := uc.categories.Get(categoriesKey); ok {
			return cats, nil
		}
		cats, err := uc.repo.ListCategories(loadCtx)
		if err != nil {
			return nil, err
		}
		uc.categories.Add(categoriesKey, cats)
		return cats, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			uc.l.Errorf(ctx, "uc.Categories ListCategories: %v", res.Err)
			return nil, res.Err
		}
		return res.Val.([]catalog.Category), nil
	}
}
