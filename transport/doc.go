// Package transport implements an http.RoundTripper that attaches the session
// bearer token to outgoing API requests and treats `401 Unauthorized` as session
// expiry: it clears the stored tokens, navigates to the login path and fails
// the call with ErrUnauthorized instead of returning the response.
//
// The RoundTripper backs client.Client but can secure any http.Client talking
// to the API.
package transport
