// Package session keeps per-visitor state in memory: the signed-in mock user and the
// booking history. Nothing is persisted; state is lost when the store is closed.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/neon-travel/booking-gateway/internal/domain"
)

// Mock profile used by Login, which receives no names.
const (
	mockFirstName = "John"
	mockLastName  = "Doe"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("session store closed")

type state struct {
	user   *domain.User
	orders []domain.Order
}

// Store is a mutex-protected map of sessions keyed by session id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*state
	closed   bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*state)}
}

// Close drops every session. Later calls return ErrClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = nil
	s.closed = true
}

// Login signs in a mock user for email without verifying anything.
// An empty or unknown sessionID starts a new session; the session id in use is returned.
func (s *Store) Login(sessionID, email string) (string, domain.User, error) {
	return s.signIn(sessionID, email, mockFirstName, mockLastName)
}

// Signup signs in a mock user with the submitted names.
func (s *Store) Signup(sessionID, email, firstName, lastName string) (string, domain.User, error) {
	return s.signIn(sessionID, email, firstName, lastName)
}

func (s *Store) signIn(sessionID, email, firstName, lastName string) (string, domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.User{}, domain.WrapInvalidRequest("email is required")
	}

	user := domain.User{
		ID:        newUserID(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", domain.User{}, ErrClosed
	}

	st, ok := s.sessions[sessionID]
	if sessionID == "" || !ok {
		sessionID = uuid.NewString()
		st = &state{}
		s.sessions[sessionID] = st
	}
	st.user = &user
	return sessionID, user, nil
}

// Logout clears the session user. Booking history is kept.
func (s *Store) Logout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if st, ok := s.sessions[sessionID]; ok {
		st.user = nil
	}
	return nil
}

// User returns the signed-in user of the session.
func (s *Store) User(sessionID string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[sessionID]
	if !ok || st.user == nil {
		return domain.User{}, false
	}
	return *st.user, true
}

// AddOrder prepends order to the session's history. The session must have a signed-in user.
func (s *Store) AddOrder(sessionID string, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	st, ok := s.sessions[sessionID]
	if !ok || st.user == nil {
		return domain.ErrUnauthenticated
	}
	st.orders = append([]domain.Order{order}, st.orders...)
	return nil
}

// Orders returns the session's orders, newest first.
func (s *Store) Orders(sessionID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return []domain.Order{}
	}
	return append([]domain.Order{}, st.orders...)
}

func newUserID() string {
	return "usr_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
