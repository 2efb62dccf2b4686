package server

import (
	"sort"
	"sync"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// sessionEntry serializes reducer calls for one session
type sessionEntry struct {
	mu      sync.Mutex
	session types.CoachingSession
}

// sessionStore keeps coaching sessions in memory, keyed by id
type sessionStore struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

func newSessionStore() *sessionStore {
	return &sessionStore{entries: make(map[string]*sessionEntry)}
}

func (st *sessionStore) create(s types.CoachingSession) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.entries[s.ID]; ok {
		return &ErrSessionExists{ID: s.ID}
	}
	st.entries[s.ID] = &sessionEntry{session: s}
	return nil
}

func (st *sessionStore) entry(id string) (*sessionEntry, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	e, ok := st.entries[id]
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return e, nil
}

func (st *sessionStore) get(id string) (types.CoachingSession, error) {
	e, err := st.entry(id)
	if err != nil {
		return types.CoachingSession{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// update replaces the session with fn's result while holding the session lock
func (st *sessionStore) update(id string, fn func(types.CoachingSession) types.CoachingSession) (types.CoachingSession, error) {
	e, err := st.entry(id)
	if err != nil {
		return types.CoachingSession{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = fn(e.session)
	return e.session.Clone(), nil
}

func (st *sessionStore) delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.entries[id]; !ok {
		return &ErrSessionNotFound{ID: id}
	}
	delete(st.entries, id)
	return nil
}

func (st *sessionStore) ids() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]string, 0, len(st.entries))
	for id := range st.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
