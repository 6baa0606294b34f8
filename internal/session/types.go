package session

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
	"storefront/internal/render"
)

// Fetcher issues exactly one page fetch for a query state.
type Fetcher interface {
	FetchPage(ctx context.Context, state pagination.QueryState) (catalog.Page, error)
}

// ActionKind names a user interaction on a view.
type ActionKind string

const (
	ActionNext        ActionKind = "next"
	ActionPrev        ActionKind = "prev"
	ActionSetLimit    ActionKind = "limit"
	ActionSetCategory ActionKind = "category"
	ActionRefresh     ActionKind = "refresh"
)

// Action is one interaction. Limit and Category are read only by the
// matching kinds.
type Action struct {
	Kind     ActionKind
	Limit    int
	Category string
}

// View is what a session currently displays.
type View struct {
	ID    string
	Seq   uint64
	Pager pagination.Snapshot
	Grid  render.Grid
	// Stale is set on the response to a request whose fetch was overtaken
	// by a later one; the View itself is the current one.
	Stale bool
}

func (k ActionKind) valid() bool {
	switch k {
	case ActionNext, ActionPrev, ActionSetLimit, ActionSetCategory, ActionRefresh:
		return true
	}
	return false
}
