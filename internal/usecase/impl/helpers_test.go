package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory credential and session store with a unique email index.
type memoryStore struct {
	mu       sync.Mutex
	nextID   int
	users    map[string]*entity.User
	sessions map[string]*entity.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]*entity.User),
		sessions: make(map[string]*entity.Session),
	}
}

type memoryUserRepo struct{ *memoryStore }

type memorySessionRepo struct{ *memoryStore }

func (s memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s memoryUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u

	return &clone, nil
}

func (s memoryUserRepo) Create(_ context.Context, user *entity.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return "", repository.ErrDuplicateEmail
		}
	}

	s.nextID++
	user.ID = "user-" + strconv.Itoa(s.nextID)
	clone := *user
	s.users[user.ID] = &clone

	return user.ID, nil
}

func (s memorySessionRepo) Create(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	session.ID = "session-" + strconv.Itoa(s.nextID)
	clone := *session
	s.sessions[session.Token] = &clone

	return nil
}

func (s memorySessionRepo) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	clone := *session

	return &clone, nil
}

func (s *memoryStore) counts() (users, sessions int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users), len(s.sessions)
}
