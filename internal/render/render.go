package render

import (
	"fmt"
	"net/url"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
)

// Render projects page into display cells. It is deterministic and keeps
// the collaborator's item order. A page without items yields the empty
// state, never an empty container.
func Render(page catalog.Page) Grid {
	if len(page.Items) == 0 {
		return Grid{State: StateEmpty, Cells: []Cell{}, Message: MessageEmpty}
	}

	cells := make([]Cell, len(page.Items))
	for i, p := range page.Items {
		cells[i] = toCell(p)
	}
	return Grid{State: StateReady, Cells: cells}
}

// RenderError is the terminal "unable to load" state shown in place of the grid.
func RenderError(error) Grid {
	return Grid{State: StateUnavailable, Cells: []Cell{}, Message: MessageUnavailable}
}

// Pager builds the prev/next links for snap. Links keep any query
// parameters already present on baseURL; skipParam/limitParam name the
// parameters for this use site.
func Pager(snap pagination.Snapshot, baseURL, skipParam, limitParam string) PagerView {
	view := PagerView{
		Label: fmt.Sprintf("Page %d of %d", snap.PageNumber, snap.PageCount),
		Limit: snap.State.Limit,
	}
	if snap.HasPrev {
		prev := snap.State.Skip - snap.State.Limit
		if prev < 0 {
			prev = 0
		}
		view.Prev = Link{Href: withPaging(baseURL, skipParam, limitParam, prev, snap.State.Limit), Enabled: true}
	}
	if snap.HasNext {
		view.Next = Link{Href: withPaging(baseURL, skipParam, limitParam, snap.State.Skip+snap.State.Limit, snap.State.Limit), Enabled: true}
	}
	return view
}

// DisabledPager is shown under an unavailable grid.
func DisabledPager() PagerView {
	return PagerView{}
}

// FormatPrice renders a price in dollars with two decimals.
func FormatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// Discount labels a discount percentage, or returns "" when there is none.
func Discount(pct float64) string {
	if pct <= 0 {
		return ""
	}
	return strconv.FormatFloat(pct, 'f', 0, 64) + "% off"
}

func toCell(p catalog.Product) Cell {
	c := Cell{
		ID:       p.ID,
		Title:    p.Title,
		Price:    FormatPrice(p.Price),
		Image:    p.Thumbnail,
		Category: p.Category,
		Href:     "/products/" + strconv.Itoa(p.ID),
	}
	if c.Image == "" && len(p.Images) > 0 {
		c.Image = p.Images[0]
	}
	c.Discount = Discount(p.DiscountPercentage)
	return c
}

func withPaging(baseURL, skipParam, limitParam string, skip, limit int) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Set(skipParam, strconv.Itoa(skip))
	q.Set(limitParam, strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}
