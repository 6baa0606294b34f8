package http

import (
	"storefront/internal/cart"
	"storefront/internal/pagination"
)

type detailReq struct {
	ID    int `uri:"id" binding:"required"`
	Limit int `form:"limit"`
	Skip  int `form:"skip"`
}

func (r detailReq) toInput() cart.DetailInput {
	return cart.DetailInput{
		ID:    r.ID,
		Lines: pagination.QueryState{Limit: r.Limit, Skip: r.Skip},
	}
}

type lineResp struct {
	ProductID          int     `json:"product_id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Total              float64 `json:"total"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountedTotal    float64 `json:"discounted_total"`
	Thumbnail          string  `json:"thumbnail"`
}

type detailResp struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	Lines           []lineResp `json:"lines"`
	Total           float64    `json:"total"`
	DiscountedTotal float64    `json:"discounted_total"`
	TotalProducts   int        `json:"total_products"`
	TotalQuantity   int        `json:"total_quantity"`
	Limit           int        `json:"limit"`
	Skip            int        `json:"skip"`
	Page            int        `json:"page"`
	PageCount       int        `json:"page_count"`
	HasNext         bool       `json:"has_next"`
	HasPrev         bool       `json:"has_prev"`
}

func (h *handler) newDetailResp(out cart.DetailOutput) detailResp {
	lines := make([]lineResp, len(out.Lines))
	for i, l := range out.Lines {
		lines[i] = lineResp{
			ProductID:          l.ProductID,
			Title:              l.Title,
			Price:              l.Price,
			Quantity:           l.Quantity,
			Total:              l.Total,
			DiscountPercentage: l.DiscountPercentage,
			DiscountedTotal:    l.DiscountedTotal,
			Thumbnail:          l.Thumbnail,
		}
	}
	return detailResp{
		ID:              out.Cart.ID,
		UserID:          out.Cart.UserID,
		Lines:           lines,
		Total:           out.Cart.Total,
		DiscountedTotal: out.Cart.DiscountedTotal,
		TotalProducts:   out.Cart.TotalProducts,
		TotalQuantity:   out.Cart.TotalQuantity,
		Limit:           out.Pager.State.Limit,
		Skip:            out.Pager.State.Skip,
		Page:            out.Pager.PageNumber,
		PageCount:       out.Pager.PageCount,
		HasNext:         out.Pager.HasNext,
		HasPrev:         out.Pager.HasPrev,
	}
}
