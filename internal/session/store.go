// Package session holds the authenticated identity for the lifetime of
// the client process.
package session

import (
	"context"
	"sync"

	"ats-client/internal/api"
	"ats-client/internal/common/logger"
	"ats-client/internal/models"
)

// State describes where identity resolution currently stands.
type State int

const (
	// StateAbsent means nobody is logged in.
	StateAbsent State = iota
	// StateLoading means identity resolution is in flight; the gate
	// renders a neutral waiting state and never redirects.
	StateLoading
	// StateReady means an identity is available.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "absent"
	}
}

// Store holds the current identity and serializes auth transitions: one
// login or logout completes before another begins. Reads are safe from
// any goroutine.
type Store struct {
	client *api.Client
	logger logger.Logger

	mu       sync.RWMutex
	state    State
	identity *models.Identity
}

func NewStore(client *api.Client, log logger.Logger) *Store {
	return &Store{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "session"}),
		state:  StateAbsent,
	}
}

// Snapshot returns the current state and identity. The identity pointer
// is never mutated after publication; it is replaced wholesale on login
// and cleared on logout.
func (s *Store) Snapshot() (State, *models.Identity) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.identity
}

// Login authenticates and replaces the held identity wholesale. On any
// failure the store is left Absent with no identity.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading
	s.identity = nil

	resp, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.state = StateAbsent
		s.client.ClearToken()
		return err
	}

	s.client.SetToken(resp.AccessToken)
	identity := resp.User
	s.identity = &identity
	s.state = StateReady

	s.logger.Info("logged in", map[string]interface{}{
		"userId": identity.ID,
		"role":   string(identity.Role),
	})
	return nil
}

// Resume revalidates a previously installed token against the platform
// and repopulates the identity from the server's answer.
func (s *Store) Resume(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading
	s.identity = nil

	identity, err := s.client.Me(ctx)
	if err != nil {
		s.state = StateAbsent
		s.client.ClearToken()
		return err
	}

	s.identity = identity
	s.state = StateReady
	return nil
}

// Logout clears the identity and the transport token.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity != nil {
		s.logger.Info("logged out", map[string]interface{}{"userId": s.identity.ID})
	}
	s.identity = nil
	s.state = StateAbsent
	s.client.ClearToken()
}
