package http

import (
	"storefront/internal/pagination"
	"storefront/internal/render"
	"storefront/internal/session"
)

type createReq struct {
	Limit    int    `json:"limit"`
	Skip     int    `json:"skip"`
	Category string `json:"category" binding:"max=64"`
}

func (r createReq) toInput() pagination.QueryState {
	return pagination.QueryState{Limit: r.Limit, Skip: r.Skip, Category: r.Category}
}

type limitReq struct {
	Limit int `json:"limit" binding:"required,min=1"`
}

type categoryReq struct {
	// Empty clears the filter.
	Category string `json:"category" binding:"max=64"`
}

type pagerResp struct {
	Limit     int    `json:"limit"`
	Skip      int    `json:"skip"`
	Category  string `json:"category,omitempty"`
	Total     int    `json:"total"`
	Page      int    `json:"page"`
	PageCount int    `json:"page_count"`
	HasNext   bool   `json:"has_next"`
	HasPrev   bool   `json:"has_prev"`
}

type viewResp struct {
	ID         string      `json:"id"`
	Seq        uint64      `json:"seq"`
	Stale      bool        `json:"stale"`
	Grid       render.Grid `json:"grid"`
	Pagination pagerResp   `json:"pagination"`
}

func newViewResp(v session.View) viewResp {
	return viewResp{
		ID:    v.ID,
		Seq:   v.Seq,
		Stale: v.Stale,
		Grid:  v.Grid,
		Pagination: pagerResp{
			Limit:     v.Pager.State.Limit,
			Skip:      v.Pager.State.Skip,
			Category:  v.Pager.State.Category,
			Total:     v.Pager.Total,
			Page:      v.Pager.PageNumber,
			PageCount: v.Pager.PageCount,
			HasNext:   v.Pager.HasNext,
			HasPrev:   v.Pager.HasPrev,
		},
	}
}
