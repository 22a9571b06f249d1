package transport

import (
	"context"
	"errors"
	"github.com/rs/zerolog/log"
	"github.com/viant/sitekit/auth"
	"github.com/viant/sitekit/navigation"
	"net/http"
)

const (
	contentTypeHeader   = "Content-Type"
	authorizationHeader = "Authorization"
	jsonContentType     = "application/json"
)

// ErrUnauthorized signals that the API rejected the session; tokens have been
// cleared and the user sent to the login path by the time it is returned.
var ErrUnauthorized = errors.New("session expired")

type RoundTripper struct {
	session   *auth.Session
	navigator navigation.Navigator
	loginPath string
	transport http.RoundTripper
}

func New(session *auth.Session, options ...Option) *RoundTripper {
	ret := &RoundTripper{
		session:   session,
		navigator: navigation.NewRecorder(),
		loginPath: navigation.LoginPath,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *RoundTripper) Session() *auth.Session {
	return r.session
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	authorized := clone(req)
	if authorized.Header.Get(contentTypeHeader) == "" {
		authorized.Header.Set(contentTypeHeader, jsonContentType)
	}
	if token, ok := r.session.Token(); ok && token != "" {
		authorized.Header.Set(authorizationHeader, "Bearer "+token)
	}

	resp, err := r.transport.RoundTrip(authorized)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	ctx := req.Context()
	if !expiresSession(ctx) {
		return resp, nil
	}
	// Close the prior body so we don’t leak.
	_ = resp.Body.Close()
	return nil, r.Expire(ctx)
}

// Expire clears both tokens and navigates to the login path. It always
// returns an error matching ErrUnauthorized.
func (r *RoundTripper) Expire(ctx context.Context) error {
	log.Debug().Str("path", r.loginPath).Msg("session expired")
	var errs = []error{ErrUnauthorized}
	if err := r.session.RemoveToken(); err != nil {
		log.Err(err).Msg("failed to clear expired session")
		errs = append(errs, err)
	}
	if err := r.navigator.Navigate(ctx, r.loginPath); err != nil {
		log.Err(err).Str("path", r.loginPath).Msg("failed to navigate to login")
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
