package app

import (
	"context"
	"encoding/gob"
	"sync"

	"github.com/metinatakli/movie-catalog/internal/catalog"
)

type sessionKey string

const (
	SessionKeyCatalog = sessionKey("catalog")
)

func (s sessionKey) String() string {
	return string(s)
}

func init() {
	// session values are gob encoded by the store
	gob.Register(catalog.State{})
}

// catalogState returns the browsing state of the current session, starting a new one
// from the record and genre sources on the first visit.
func (app *Application) catalogState(ctx context.Context) (catalog.State, error) {
	state, ok := app.sessionManager.Get(ctx, SessionKeyCatalog.String()).(catalog.State)
	if ok {
		return state, nil
	}

	state, err := catalog.Initialize(ctx, app.movieRepo, app.genreRepo, app.config.PageSize)
	if err != nil {
		return catalog.State{}, err
	}

	app.saveCatalogState(ctx, state)

	return state, nil
}

func (app *Application) saveCatalogState(ctx context.Context, state catalog.State) {
	app.sessionManager.Put(ctx, SessionKeyCatalog.String(), state)
}

// sessionLocks hands out one mutex per session token and forgets it once no request
// holds it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func (l *sessionLocks) lock(token string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sessionLock)
	}

	m, ok := l.locks[token]
	if !ok {
		m = &sessionLock{}
		l.locks[token] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, token)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
