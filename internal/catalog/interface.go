package catalog

import (
	"context"

	"storefront/internal/pagination"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List fetches the page selected by state and returns it with the pager
	// state after observing the collaborator's total.
	List(ctx context.Context, state pagination.QueryState) (ListOutput, error)
	// Browse is List plus the category selector, fetched concurrently.
	Browse(ctx context.Context, state pagination.QueryState) (BrowseOutput, error)
	// FetchPage issues exactly one fetch for state, without normalisation.
	FetchPage(ctx context.Context, state pagination.QueryState) (Page, error)
	Categories(ctx context.Context) ([]Category, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
}
