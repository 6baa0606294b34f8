package usecase

import (
	"context"

	"storefront/internal/cart"
	"storefront/internal/pagination"
)

// Detail fetches a cart and returns the page of lines selected by
// input.Lines. The collaborator returns every line at once, so paging is a
// window over the fetched list.
func (uc *implUseCase) Detail(ctx context.Context, input cart.DetailInput) (cart.DetailOutput, error) {
	if input.ID <= 0 {
		return cart.DetailOutput{}, cart.ErrInvalidID
	}

	c, err := uc.repo.GetCart(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetCart: %v", err)
		return cart.DetailOutput{}, err
	}
	if c.ID == 0 {
		return cart.DetailOutput{}, cart.ErrCartNotFound
	}

	ctrl := pagination.New(uc.paging, input.Lines)
	ctrl.Observe(len(c.Lines))
	start, end := pagination.Window(len(c.Lines), ctrl.State())

	return cart.DetailOutput{
		Cart:  c,
		Lines: c.Lines[start:end],
		Pager: ctrl.Snapshot(),
	}, nil
}
