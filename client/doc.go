// Package client provides the API client used by both the browser and the
// terminal hosts.
//
// Every call goes through transport.RoundTripper, so requests carry the
// session bearer token and a 401 response surfaces as transport.ErrUnauthorized
// after the session has been cleared and the user sent to the login path.
// Callers must treat that error as "already handled".
//
// Example:
//
//	session := auth.NewSession(store.NewMemoryStore())
//	cli := client.New("https://analyzer.example.com", session)
//	resp, err := cli.Request(ctx, "/dashboard/stats")
//	if errors.Is(err, transport.ErrUnauthorized) {
//		return nil
//	}
package client
