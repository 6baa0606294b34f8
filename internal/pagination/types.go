package pagination

// QueryState is the pagination and filter parameters of one view.
type QueryState struct {
	Limit    int
	Skip     int
	Category string
}

// Options parameterises a use site (catalog grid, related products, cart lines).
type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// Default options per use site.
var (
	CatalogOptions = Options{DefaultLimit: 12, MaxLimit: 100}
	RelatedOptions = Options{DefaultLimit: 4, MaxLimit: 20}
	CartOptions    = Options{DefaultLimit: 5, MaxLimit: 50}
)

// Snapshot is a read-only view of a Controller, suitable for presenters.
type Snapshot struct {
	State      QueryState
	Total      int
	HasNext    bool
	HasPrev    bool
	PageNumber int
	PageCount  int
}
