package session

import (
	"context"
	"sync"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
	"storefront/internal/render"
)

// maxClampRefetches bounds follow-up fetches when the collection shrank
// under the current offset.
const maxClampRefetches = 1

// Session is one view instance. It exclusively owns its Controller.
//
// Every state change takes a new sequence number. A fetch result is applied
// only if its sequence number is still the latest issued, so a slow earlier
// response can never overwrite a later one.
type Session struct {
	id      string
	fetcher Fetcher
	onStale func()

	mu     sync.Mutex
	ctrl   *pagination.Controller
	issued uint64
	view   View
}

func newSession(id string, fetcher Fetcher, ctrl *pagination.Controller, onStale func()) *Session {
	return &Session{
		id:      id,
		fetcher: fetcher,
		onStale: onStale,
		ctrl:    ctrl,
		view: View{
			ID:    id,
			Pager: ctrl.Disabled(),
			Grid:  render.Render(catalog.Page{}),
		},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// View returns what the session currently displays.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Apply performs a on the controller and fetches the resulting page. An
// action that leaves the query state unchanged (next on the last page, prev
// on the first) does not fetch, except ActionRefresh.
//
// The returned error is the fetch error when this request's result was
// applied; the returned View then shows the unavailable state.
func (s *Session) Apply(ctx context.Context, a Action) (View, error) {
	if !a.Kind.valid() {
		return s.View(), ErrUnknownAction
	}

	s.mu.Lock()
	before := s.ctrl.State()
	mutate(s.ctrl, a)
	if a.Kind != ActionRefresh && s.ctrl.State() == before {
		v := s.view
		s.mu.Unlock()
		return v, nil
	}
	s.issued++
	seq, state := s.issued, s.ctrl.State()
	s.mu.Unlock()

	for attempt := 0; ; attempt++ {
		page, err := s.fetcher.FetchPage(ctx, state)

		s.mu.Lock()
		if seq != s.issued {
			v := s.view
			s.mu.Unlock()
			if s.onStale != nil {
				s.onStale()
			}
			v.Stale = true
			return v, nil
		}

		if err != nil {
			s.view = View{ID: s.id, Seq: seq, Pager: s.ctrl.Disabled(), Grid: render.RenderError(err)}
			v := s.view
			s.mu.Unlock()
			return v, err
		}

		s.ctrl.Observe(page.Total)
		if s.ctrl.State() != state && attempt < maxClampRefetches {
			s.issued++
			seq, state = s.issued, s.ctrl.State()
			s.mu.Unlock()
			continue
		}

		s.view = View{ID: s.id, Seq: seq, Pager: s.ctrl.Snapshot(), Grid: render.Render(page)}
		v := s.view
		s.mu.Unlock()
		return v, nil
	}
}

func mutate(ctrl *pagination.Controller, a Action) {
	switch a.Kind {
	case ActionNext:
		ctrl.Next()
	case ActionPrev:
		ctrl.Prev()
	case ActionSetLimit:
		ctrl.SetLimit(a.Limit)
	case ActionSetCategory:
		ctrl.SetCategory(a.Category)
	}
}
