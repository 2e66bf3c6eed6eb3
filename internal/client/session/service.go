package session

import (
	"context"
	"sync"

	"github.com/stylocoin/dashboard/internal/logging"
)

type subscriber struct {
	id int
	fn func(State)
}

// Service holds the process-wide session and notifies subscribers of every
// change. It starts in the loading state until Hydrate has run.
type Service struct {
	store *Store
	log   logging.Logger

	mu     sync.RWMutex
	state  State
	subs   []subscriber
	nextID int

	hydrate    sync.Once
	hydrateErr error
}

func NewService(store *Store, log logging.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		state: State{IsLoading: true},
	}
}

// Store returns the persistence backing the service.
func (s *Service) Store() *Store { return s.store }

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Token implements client.TokenSource.
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Dispatch applies a and notifies subscribers with the new snapshot.
func (s *Service) Dispatch(a Action) State {
	next, _ := s.apply(a, false)
	return next
}

// apply reduces a into the state. With onlyWhileLoading it does nothing once
// the state has been resolved.
func (s *Service) apply(a Action, onlyWhileLoading bool) (State, bool) {
	s.mu.Lock()
	if onlyWhileLoading && !s.state.IsLoading {
		snap := s.state.clone()
		s.mu.Unlock()
		return snap, false
	}
	s.state = Reduce(s.state, a)
	snap := s.state.clone()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap.clone())
	}
	return snap, true
}

// Subscribe registers fn to be called after every change. Calls happen on
// the dispatching goroutine, in subscription order. The returned func
// removes the subscription.
func (s *Service) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Hydrate restores the persisted session once. Loading is resolved even when
// the store cannot be read; the error is returned for logging. If a sign-in or
// sign-out already resolved the state, the restored session is discarded.
func (s *Service) Hydrate(ctx context.Context) error {
	s.hydrate.Do(func() {
		restored, err := s.store.Load(ctx)
		if err != nil {
			s.hydrateErr = err
			s.log.Warn(ctx, "session restore failed", "error", err)
		}
		if _, applied := s.apply(Hydrated(restored), true); applied {
			s.log.Debug(ctx, "session hydrated",
				"authenticated", restored.Authenticated, "keep_logged_in", restored.Flag.String())
		}
	})
	return s.hydrateErr
}
