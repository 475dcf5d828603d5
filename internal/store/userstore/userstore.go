// Package userstore is the keyed username -> balances container (C2). It is
// a process-wide, thread-safe map; all cross-request ordering for a given
// user is provided by the Gateway, not by this store.
package userstore

import (
	"sync"

	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
)

// Store is the in-memory user table.
type Store struct {
	mu    sync.Mutex
	users map[string]*mmodel.User
}

// New returns an empty Store.
func New() *Store {
	return &Store{users: make(map[string]*mmodel.User)}
}

// Create inserts a new user with empty balances. It returns false if the
// user already exists.
func (s *Store) Create(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; ok {
		return false
	}

	s.users[id] = &mmodel.User{ID: id, Balances: mmodel.Balances{}}

	return true
}

// Exists reports whether id has been created.
func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[id]

	return ok
}

// Get returns a copy of the user's balances. The bool is false if the user
// does not exist.
func (s *Store) Get(id string) (mmodel.Balances, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}

	return u.Balances.Clone(), true
}

// Balance returns the balance for one currency, 0 if the user never touched
// it. The bool is false if the user does not exist.
func (s *Store) Balance(id, currency string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return 0, false
	}

	return u.Balances[currency], true
}

// Update atomically replaces the user's entire balances mapping. It returns
// false if the user does not exist.
func (s *Store) Update(id string, balances mmodel.Balances) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false
	}

	u.Balances = balances

	return true
}
