package transport

import (
	"github.com/viant/sitekit/navigation"
	"net/http"
)

type Option func(*RoundTripper)

// WithNavigator sets the navigator used on session expiry
func WithNavigator(navigator navigation.Navigator) Option {
	return func(t *RoundTripper) {
		t.navigator = navigator
	}
}

// WithLoginPath sets the path visited on session expiry
func WithLoginPath(path string) Option {
	return func(t *RoundTripper) {
		t.loginPath = path
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		if transport != nil {
			t.transport = transport
		}
	}
}
