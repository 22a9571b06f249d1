package client

import (
	"context"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/viant/sitekit/transport"
	"golang.org/x/oauth2"
	"net/http"
	"time"
)

const (
	loginEndpoint    = "/auth/login"
	registerEndpoint = "/auth/register"
)

type (
	// Credentials are posted to the login endpoint
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// Registration is posted to the register endpoint
	Registration struct {
		Email    string  `json:"email"`
		Password string  `json:"password"`
		FullName *string `json:"full_name,omitempty"`
	}

	// User is the account returned by the API
	User struct {
		ID                   string    `json:"id"`
		Email                string    `json:"email"`
		FullName             *string   `json:"full_name"`
		Plan                 string    `json:"plan"`
		IsActive             bool      `json:"is_active"`
		CreatedAt            time.Time `json:"created_at"`
		AnalysesCount        int       `json:"analyses_count"`
		MonthlyAnalysesCount int       `json:"monthly_analyses_count"`
	}
)

// Login exchanges credentials for an access/refresh pair and stores both.
// A rejected login does not count as session expiry: no redirect happens.
func (c *Client) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	resp, err := c.Request(transport.WithKeepSession(ctx), loginEndpoint,
		WithMethod(http.MethodPost),
		WithJSON(&Credentials{Email: email, Password: password}))
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		_ = resp.Body.Close()
		return nil, ErrInvalidCredentials
	case resp.StatusCode/100 != 2:
		return nil, NewAPIError(resp)
	}
	token := &oauth2.Token{}
	if err = DecodeJSON(resp, token); err != nil {
		return nil, err
	}
	if err = c.session.SetTokens(token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	log.Debug().Str("email", email).Msg("logged in")
	return token, nil
}

// Register creates an account; it does not log in.
func (c *Client) Register(ctx context.Context, registration *Registration) (*User, error) {
	resp, err := c.Request(transport.WithKeepSession(ctx), registerEndpoint,
		WithMethod(http.MethodPost),
		WithJSON(registration))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, NewAPIError(resp)
	}
	user := &User{}
	if err = DecodeJSON(resp, user); err != nil {
		return nil, err
	}
	return user, nil
}
