package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/sitekit/auth"
	"github.com/viant/sitekit/navigation"
	"github.com/viant/sitekit/transport"
	"io"
	"net/http"
	"strings"
)

// APIBase prefixes every endpoint
const APIBase = "/api/v1"

type Client struct {
	baseURL    string
	session    *auth.Session
	navigator  navigation.Navigator
	transport  http.RoundTripper
	httpClient *http.Client
	rootPath   string
	loginPath  string
}

// Session returns the client session
func (c *Client) Session() *auth.Session {
	return c.session
}

// URL returns the absolute URL of an API endpoint
func (c *Client) URL(endpoint string) string {
	return strings.TrimRight(c.baseURL, "/") + APIBase + endpoint
}

// Request issues a request to {baseURL}{APIBase}{endpoint}. Any status other
// than 401 is returned for the caller to interpret; on 401 the response is
// discarded and the error matches transport.ErrUnauthorized.
func (c *Client) Request(ctx context.Context, endpoint string, options ...RequestOption) (*http.Response, error) {
	req := &request{method: http.MethodGet, header: http.Header{}}
	for _, opt := range options {
		opt(req)
	}
	if req.err != nil {
		return nil, req.err
	}
	httpRequest, err := http.NewRequestWithContext(ctx, req.method, c.URL(endpoint), req.body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.header {
		httpRequest.Header[k] = v
	}
	return c.httpClient.Do(httpRequest)
}

// Logout clears both tokens, then navigates to the root path.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.session.RemoveToken(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return c.navigator.Navigate(ctx, c.rootPath)
}

// DecodeJSON decodes the response body into dest and closes it.
func DecodeJSON(resp *http.Response, dest interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if resp.Request != nil && resp.Request.URL != nil {
			return fmt.Errorf("failed to decode %v response: %w", resp.Request.URL.Path, err)
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type request struct {
	method string
	body   io.Reader
	header http.Header
	err    error
}

// RequestOption customises a single request
type RequestOption func(r *request)

// WithMethod sets HTTP method
func WithMethod(method string) RequestOption {
	return func(r *request) {
		r.method = method
	}
}

// WithBody sets the request body as is
func WithBody(body io.Reader) RequestOption {
	return func(r *request) {
		r.body = body
	}
}

// WithJSON marshals value as the request body
func WithJSON(value interface{}) RequestOption {
	return func(r *request) {
		data, err := json.Marshal(value)
		if err != nil {
			r.err = fmt.Errorf("failed to encode request body: %w", err)
			return
		}
		r.body = bytes.NewReader(data)
	}
}

// WithHeader sets a request header; it replaces the default for the same key
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		r.header.Set(key, value)
	}
}

func New(baseURL string, session *auth.Session, options ...Option) *Client {
	if session == nil {
		session = auth.NewSession(nil)
	}
	ret := &Client{
		baseURL:    baseURL,
		session:    session,
		navigator:  navigation.NewRecorder(),
		transport:  http.DefaultTransport,
		httpClient: &http.Client{},
		rootPath:   navigation.RootPath,
		loginPath:  navigation.LoginPath,
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.httpClient.Transport = transport.New(session,
		transport.WithNavigator(ret.navigator),
		transport.WithLoginPath(ret.loginPath),
		transport.WithTransport(ret.transport))
	return ret
}
