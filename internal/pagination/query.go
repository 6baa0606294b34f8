package pagination

const (
	fallbackDefaultLimit = 10
)

func (o Options) withDefaults() Options {
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = fallbackDefaultLimit
	}
	if o.MaxLimit > 0 && o.DefaultLimit > o.MaxLimit {
		o.DefaultLimit = o.MaxLimit
	}
	return o
}

// FromQuery normalises untrusted limit/skip values, typically taken from a
// URL. The result always has a positive limit and a non-negative skip
// aligned down to a multiple of the limit.
func FromQuery(limit, skip int, category string, opts Options) QueryState {
	opts = opts.withDefaults()

	if limit <= 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		limit = opts.MaxLimit
	}
	if skip < 0 {
		skip = 0
	}
	skip -= skip % limit

	return QueryState{
		Limit:    limit,
		Skip:     skip,
		Category: category,
	}
}

// Window returns the [start, end) bounds of state applied to a list of n
// elements that is already in memory.
func Window(n int, state QueryState) (start, end int) {
	if n <= 0 || state.Limit <= 0 {
		return 0, 0
	}
	start = state.Skip
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end = start + state.Limit
	if end > n {
		end = n
	}
	return start, end
}
