package auth

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/viant/sitekit/store"
	"golang.org/x/oauth2"
)

const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// ErrNoToken is returned when an operation needs a stored access token.
var ErrNoToken = errors.New("no access token")

// Session is the token store over a durable key-value store.
type Session struct {
	store store.Store
}

// Token returns the stored access token.
func (s *Session) Token() (string, bool) {
	return s.store.Lookup(AccessTokenKey)
}

// RefreshToken returns the stored refresh token.
func (s *Session) RefreshToken() (string, bool) {
	return s.store.Lookup(RefreshTokenKey)
}

// SetToken overwrites the access token. The value is not validated.
func (s *Session) SetToken(token string) error {
	return s.store.Put(AccessTokenKey, token)
}

// SetTokens stores the access/refresh pair issued by the login endpoint.
func (s *Session) SetTokens(token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return ErrNoToken
	}
	if err := s.SetToken(token.AccessToken); err != nil {
		return err
	}
	if token.RefreshToken == "" {
		return s.store.Delete(RefreshTokenKey)
	}
	return s.store.Put(RefreshTokenKey, token.RefreshToken)
}

// RemoveToken deletes both the access and refresh tokens; absent keys are fine.
func (s *Session) RemoveToken() error {
	var errs []error
	for _, key := range []string{AccessTokenKey, RefreshTokenKey} {
		if err := s.store.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %v: %w", key, err))
		}
	}
	log.Debug().Msg("session tokens cleared")
	return errors.Join(errs...)
}

// IsAuthenticated reports whether a non-empty access token is stored.
func (s *Session) IsAuthenticated() bool {
	token, ok := s.Token()
	return ok && token != ""
}

// Store returns the underlying store
func (s *Session) Store() store.Store {
	return s.store
}

// NewSession creates a session over the supplied store, in-memory when nil.
func NewSession(st store.Store) *Session {
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Session{store: st}
}
