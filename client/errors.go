package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidCredentials is returned when login is rejected with 401
var ErrInvalidCredentials = errors.New("incorrect email or password")

// APIError represents a non-2xx API response
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: %v %v", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %v %v", e.StatusCode, e.Detail)
}

// NewAPIError reads the response body into an APIError and closes it.
// The API reports {"detail": "..."}; validation failures carry a structured detail,
// kept as raw JSON.
func NewAPIError(resp *http.Response) *APIError {
	defer resp.Body.Close()
	ret := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(data) == 0 {
		return ret
	}
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err = json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		ret.Detail = string(data)
		return ret
	}
	var detail string
	if err = json.Unmarshal(body.Detail, &detail); err == nil {
		ret.Detail = detail
		return ret
	}
	ret.Detail = string(body.Detail)
	return ret
}
