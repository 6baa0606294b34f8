package usecase

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
)

// Detail retrieves a product and one page of related products from the same
// category. Returns ErrProductNotFound when the product does not exist.
func (uc *implUseCase) Detail(ctx context.Context, input catalog.DetailInput) (catalog.DetailOutput, error) {
	if input.ID <= 0 {
		return catalog.DetailOutput{}, catalog.ErrInvalidID
	}

	product, err := uc.repo.GetProduct(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetProduct: %v", err)
		return catalog.DetailOutput{}, err
	}
	if product.ID == 0 {
		return catalog.DetailOutput{}, catalog.ErrProductNotFound
	}

	out := catalog.DetailOutput{Product: product}

	related := input.Related
	related.Category = product.Category
	ctrl := pagination.New(uc.cfg.RelatedPaging, related)
	out.RelatedPager = ctrl.Disabled()

	if product.Category == "" {
		return out, nil
	}

	page, err := uc.fetchObserved(ctx, ctrl)
	if err != nil {
		// Related products are secondary; the product still renders.
		uc.l.Warnf(ctx, "uc.Detail related FetchPage: %v", err)
		out.RelatedErr = err
		return out, nil
	}

	out.Related = page
	out.RelatedPager = ctrl.Snapshot()
	return out, nil
}
