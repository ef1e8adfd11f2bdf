package client

import (
	"sync"

	"ecofinds/model"
)

// Session holds the bearer token and the current user. It is passed
// explicitly to every component that needs identity, never ambient state.
// A 401 from the server invalidates it, after which authenticated calls
// fail fast until a new token is set.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *model.User
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// AuthHeader returns the Authorization header value, or "" when there is
// no live token.
func (s *Session) AuthHeader() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return ""
	}
	return "Bearer " + s.token
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Session) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Invalidate clears credentials and identity.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}
