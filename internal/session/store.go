package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"storefront/internal/pagination"
	"storefront/pkg/log"
)

const (
	defaultMaxSessions = 10000
	defaultTTL         = 30 * time.Minute
)

// Config bounds the session store.
type Config struct {
	MaxSessions int
	TTL         time.Duration
	Paging      pagination.Options
	// OnStale is called every time a fetch result is discarded.
	OnStale func()
}

// Store keeps view sessions keyed by ID. Idle sessions expire after TTL and
// the least recently used are evicted beyond MaxSessions.
type Store struct {
	sessions *expirable.LRU[string, *Session]
	fetcher  Fetcher
	cfg      Config
	l        log.Logger
}

// NewStore creates a session store fetching pages through fetcher.
func NewStore(fetcher Fetcher, l log.Logger, cfg Config) *Store {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Paging.DefaultLimit <= 0 {
		cfg.Paging = pagination.CatalogOptions
	}

	return &Store{
		sessions: expirable.NewLRU[string, *Session](cfg.MaxSessions, nil, cfg.TTL),
		fetcher:  fetcher,
		cfg:      cfg,
		l:        l,
	}
}

// Create opens a session at state and performs its initial fetch. The
// session is stored even when that fetch fails so the client can refresh it.
func (st *Store) Create(ctx context.Context, state pagination.QueryState) (*Session, View, error) {
	id := uuid.NewString()
	sess := newSession(id, st.fetcher, pagination.New(st.cfg.Paging, state), st.cfg.OnStale)
	st.sessions.Add(id, sess)

	v, err := sess.Apply(ctx, Action{Kind: ActionRefresh})
	if err != nil {
		st.l.Warnf(ctx, "session.Create %s initial fetch: %v", id, err)
	}
	return sess, v, err
}

// Get returns the session with id and renews its idle timeout.
func (st *Store) Get(id string) (*Session, error) {
	sess, ok := st.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	st.sessions.Add(id, sess)
	return sess, nil
}

// Delete drops a session.
func (st *Store) Delete(id string) {
	st.sessions.Remove(id)
}

// Len reports how many sessions are live.
func (st *Store) Len() int {
	return st.sessions.Len()
}
