package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"picoweb/core/auth"
)

// UserStore keeps user records in memory with sequential ids.
type UserStore struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]auth.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[int64]auth.User),
	}
}

// Create persists u and assigns the next id.
func (s *UserStore) Create(_ context.Context, u *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	u.ID = s.seq
	s.users[u.ID] = *u
	return nil
}

// FindByID returns the user with the given id.
func (s *UserStore) FindByID(_ context.Context, id int64) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", auth.ErrUserNotFound, id)
	}
	return &u, nil
}

// FindByUsername returns the first user with the given username, by id, so
// the result is stable when usernames repeat (registration does not enforce
// uniqueness).
func (s *UserStore) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		if u := s.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: username %q", auth.ErrUserNotFound, username)
}

// FindByCredentials returns the first user matching the exact pair.
func (s *UserStore) FindByCredentials(_ context.Context, username, password string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		if u := s.users[id]; u.Username == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: username %q", auth.ErrUserNotFound, username)
}

// Update merges non-empty fields of params into the stored user. The merge
// happens under the write lock so concurrent edits of one user serialize.
func (s *UserStore) Update(_ context.Context, params auth.UpdateParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[params.ID]
	if !ok {
		return fmt.Errorf("%w: id %d", auth.ErrUserNotFound, params.ID)
	}
	if params.Username != "" {
		u.Username = params.Username
	}
	if params.Password != "" {
		u.Password = params.Password
	}
	s.users[params.ID] = u
	return nil
}

// All returns every user ordered by id.
func (s *UserStore) All(_ context.Context) ([]auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]auth.User, 0, len(s.users))
	for _, id := range s.sortedIDs() {
		out = append(out, s.users[id])
	}
	return out, nil
}

// sortedIDs must be called with the lock held.
func (s *UserStore) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
