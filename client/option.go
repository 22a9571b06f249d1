package client

import (
	"github.com/viant/sitekit/navigation"
	"net/http"
	"time"
)

// Option represents option
type Option func(c *Client)

// WithNavigator sets the navigator used for logout and session expiry
func WithNavigator(navigator navigation.Navigator) Option {
	return func(c *Client) {
		c.navigator = navigator
	}
}

// WithTransport sets the underlying transport wrapped by the bearer transport
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithTimeout sets the overall request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithPaths overrides the root and login navigation paths
func WithPaths(rootPath, loginPath string) Option {
	return func(c *Client) {
		if rootPath != "" {
			c.rootPath = rootPath
		}
		if loginPath != "" {
			c.loginPath = loginPath
		}
	}
}
