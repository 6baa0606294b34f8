package pagination

// Controller owns the QueryState of a single view and the total reported by
// the last fetched page. None of its operations fail: out-of-range
// navigation is a no-op and shows up as HasNext/HasPrev being false.
//
// Controller is not safe for concurrent use; callers that share one must
// serialise access themselves.
type Controller struct {
	state QueryState
	total int
	opts  Options
}

// New returns a Controller starting from state, normalised against opts.
func New(opts Options, state QueryState) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		state: FromQuery(state.Limit, state.Skip, state.Category, opts),
		opts:  opts,
	}
}

// State returns a copy of the current query parameters.
func (c *Controller) State() QueryState { return c.state }

// Total returns the last observed total.
func (c *Controller) Total() int { return c.total }

// SetLimit replaces the page size and restarts at the first page.
// Non-positive values are ignored; values above MaxLimit are capped.
func (c *Controller) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	if c.opts.MaxLimit > 0 && limit > c.opts.MaxLimit {
		limit = c.opts.MaxLimit
	}
	c.state.Limit = limit
	c.state.Skip = 0
}

// Next advances one page unless the current page is the last one.
func (c *Controller) Next() {
	if !c.HasNext() {
		return
	}
	c.state.Skip += c.state.Limit
}

// Prev goes back one page, stopping at the first.
func (c *Controller) Prev() {
	c.state.Skip -= c.state.Limit
	if c.state.Skip < 0 {
		c.state.Skip = 0
	}
}

// SetCategory replaces the category filter and restarts at the first page.
func (c *Controller) SetCategory(category string) {
	c.state.Category = category
	c.state.Skip = 0
}

// Observe records the total reported by the collaborator. When the
// collection shrank below the current offset, skip is pulled back to the
// last page that still exists.
func (c *Controller) Observe(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.state.Skip = clampSkip(c.state.Skip, c.state.Limit, total)
}

// HasNext reports whether another page follows the current one.
func (c *Controller) HasNext() bool { return c.state.Skip+c.state.Limit < c.total }

// HasPrev reports whether a page precedes the current one.
func (c *Controller) HasPrev() bool { return c.state.Skip > 0 }

// PageNumber is the 1-based index of the current page.
func (c *Controller) PageNumber() int { return c.state.Skip/c.state.Limit + 1 }

// PageCount is the number of pages for the observed total, at least 1.
func (c *Controller) PageCount() int {
	if c.total == 0 {
		return 1
	}
	return (c.total + c.state.Limit - 1) / c.state.Limit
}

// Snapshot captures the controller for presentation.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Total:      c.total,
		HasNext:    c.HasNext(),
		HasPrev:    c.HasPrev(),
		PageNumber: c.PageNumber(),
		PageCount:  c.PageCount(),
	}
}

// Disabled returns a snapshot of the current state with both affordances
// turned off, used when the last fetch failed.
func (c *Controller) Disabled() Snapshot {
	s := c.Snapshot()
	s.HasNext = false
	s.HasPrev = false
	return s
}

func clampSkip(skip, limit, total int) int {
	if total == 0 || skip < 0 {
		return 0
	}
	if skip >= total {
		return ((total - 1) / limit) * limit
	}
	return skip
}
