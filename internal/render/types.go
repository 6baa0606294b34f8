package render

// State is the display state of a grid.
type State string

const (
	StateReady       State = "ready"
	StateEmpty       State = "empty"
	StateUnavailable State = "unavailable"
)

// Messages shown in place of the item grid.
const (
	MessageEmpty       = "No products match your selection."
	MessageUnavailable = "We were unable to load products. Please try again later."
)

// Cell is one displayable product tile.
type Cell struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Discount string `json:"discount,omitempty"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Href     string `json:"href"`
}

// Grid is the projection of one page for display.
type Grid struct {
	State   State  `json:"state"`
	Cells   []Cell `json:"cells"`
	Message string `json:"message,omitempty"`
}

// Link is a pagination affordance.
type Link struct {
	Href    string `json:"href,omitempty"`
	Enabled bool   `json:"enabled"`
}

// PagerView is the pagination bar under a grid.
type PagerView struct {
	Prev  Link   `json:"prev"`
	Next  Link   `json:"next"`
	Label string `json:"label"`
	Limit int    `json:"limit"`
}
