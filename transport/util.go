package transport

import (
	"net/http"
)

// clone copies the request so caller headers are never mutated; the body is
// shared and forwarded unchanged.
func clone(r *http.Request) *http.Request {
	cloned := r.Clone(r.Context())
	if cloned.Header == nil {
		cloned.Header = http.Header{}
	}
	return cloned
}
