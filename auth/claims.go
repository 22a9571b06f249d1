package auth

import (
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the display claims the API puts in its tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Plan  string `json:"plan,omitempty"`
	Type  string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// Claims decodes the access token without verifying its signature.
// Verification belongs to the API; the result is for display only.
func (s *Session) Claims() (*Claims, error) {
	token, ok := s.Token()
	if !ok || token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

// ParseClaims decodes an unverified JWT payload.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}
