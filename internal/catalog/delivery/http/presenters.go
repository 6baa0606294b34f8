package http

import (
	"storefront/internal/catalog"
	"storefront/internal/pagination"
)

// --- Request DTOs ---

type listReq struct {
	Limit    int    `form:"limit"`
	Skip     int    `form:"skip"`
	Category string `form:"category" binding:"max=64"`
}

func (r listReq) toInput() pagination.QueryState {
	return pagination.QueryState{
		Limit:    r.Limit,
		Skip:     r.Skip,
		Category: r.Category,
	}
}

type detailReq struct {
	ID           int `uri:"id" binding:"required"`
	RelatedLimit int `form:"rlimit"`
	RelatedSkip  int `form:"rskip"`
}

func (r detailReq) toInput() catalog.DetailInput {
	return catalog.DetailInput{
		ID: r.ID,
		Related: pagination.QueryState{
			Limit: r.RelatedLimit,
			Skip:  r.RelatedSkip,
		},
	}
}

// --- Response DTOs ---

type productResp struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand,omitempty"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images,omitempty"`
}

func newProductResp(p catalog.Product) productResp {
	return productResp{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Category:           p.Category,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
	}
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

func newPagerResp(s pagination.Snapshot) pagerResp {
	return pagerResp{
		Limit:     s.State.Limit,
		Skip:      s.State.Skip,
		Category:  s.State.Category,
		Total:     s.Total,
		Page:      s.PageNumber,
		PageCount: s.PageCount,
		HasNext:   s.HasNext,
		HasPrev:   s.HasPrev,
	}
}

func newProductResps(items []catalog.Product) []productResp {
	out := make([]productResp, len(items))
	for i, p := range items {
		out[i] = newProductResp(p)
	}
	return out
}

type listResp struct {
	Products   []productResp `json:"products"`
	Pagination pagerResp     `json:"pagination"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	return listResp{
		Products:   newProductResps(out.Page.Items),
		Pagination: newPagerResp(out.Pager),
	}
}

type categoryResp struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(cats []catalog.Category) categoriesResp {
	out := make([]categoryResp, len(cats))
	for i, c := range cats {
		out[i] = categoryResp{Slug: c.Slug, Name: c.Name}
	}
	return categoriesResp{Categories: out}
}

type relatedResp struct {
	Products   []productResp `json:"products"`
	Pagination pagerResp     `json:"pagination"`
	Error      string        `json:"error,omitempty"`
}

type detailResp struct {
	Product productResp `json:"product"`
	Related relatedResp `json:"related"`
}

func (h *handler) newDetailResp(out catalog.DetailOutput) detailResp {
	related := relatedResp{
		Products:   newProductResps(out.Related.Items),
		Pagination: newPagerResp(out.RelatedPager),
	}
	if out.RelatedErr != nil {
		related.Error = errCatalogUnavailable.Message
	}
	return detailResp{
		Product: newProductResp(out.Product),
		Related: related,
	}
}
