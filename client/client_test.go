package client

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sitekit/auth"
	"github.com/viant/sitekit/navigation"
	"github.com/viant/sitekit/store"
	"github.com/viant/sitekit/transport"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// apiServer mimics the analysis API routes used by the client
func apiServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		credentials := &Credentials{}
		_ = json.NewDecoder(r.Body).Decode(credentials)
		switch {
		case credentials.Password == "Secret#123":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"access-1","refresh_token":"refresh-1","token_type":"bearer"}`))
		case credentials.Email == "inactive@example.com":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"detail":"Account is inactive"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
		}
	})
	mux.HandleFunc("/api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		registration := &Registration{}
		_ = json.NewDecoder(r.Body).Decode(registration)
		if registration.Email == "taken@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u1","email":"` + registration.Email + `","full_name":null,"plan":"basic","is_active":true,"created_at":"2024-03-05T14:07:00Z","analyses_count":0,"monthly_analyses_count":0}`))
	})
	mux.HandleFunc("/api/v1/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"total_analyses":3}`))
	})
	mux.HandleFunc("/api/v1/echo", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"method":        r.Method,
			"path":          r.URL.Path,
			"body":          string(data),
			"contentType":   r.Header.Get("Content-Type"),
			"authorization": r.Header.Get("Authorization"),
			"trace":         r.Header.Get("X-Trace"),
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T) (*Client, *navigation.Recorder) {
	server := apiServer(t)
	recorder := navigation.NewRecorder()
	return New(server.URL, auth.NewSession(store.NewMemoryStore()), WithNavigator(recorder)), recorder
}

func TestClient_Request(t *testing.T) {
	ctx := context.Background()
	cli, recorder := newClient(t)

	t.Run("options pass through", func(t *testing.T) {
		resp, err := cli.Request(ctx, "/echo",
			WithMethod(http.MethodPut),
			WithJSON(map[string]int{"score": 81}),
			WithHeader("X-Trace", "t1"))
		require.NoError(t, err)
		echo := map[string]string{}
		require.NoError(t, DecodeJSON(resp, &echo))
		assert.Equal(t, http.MethodPut, echo["method"])
		assert.Equal(t, "/api/v1/echo", echo["path"])
		assert.Equal(t, `{"score":81}`, echo["body"])
		assert.Equal(t, "application/json", echo["contentType"])
		assert.Equal(t, "", echo["authorization"])
		assert.Equal(t, "t1", echo["trace"])
	})

	t.Run("caller content type wins", func(t *testing.T) {
		resp, err := cli.Request(ctx, "/echo", WithHeader("Content-Type", "text/plain"))
		require.NoError(t, err)
		echo := map[string]string{}
		require.NoError(t, DecodeJSON(resp, &echo))
		assert.Equal(t, "text/plain", echo["contentType"])
	})

	t.Run("unencodable body", func(t *testing.T) {
		_, err := cli.Request(ctx, "/echo", WithJSON(make(chan int)))
		assert.Error(t, err)
	})

	t.Run("non 2xx is returned", func(t *testing.T) {
		resp, err := cli.Request(ctx, "/missing")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})
	assert.Empty(t, recorder.History())
}

func TestClient_LoginAndExpiry(t *testing.T) {
	ctx := context.Background()
	cli, recorder := newClient(t)

	token, err := cli.Login(ctx, "jane@example.com", "Secret#123")
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.True(t, cli.Session().IsAuthenticated())
	refresh, _ := cli.Session().RefreshToken()
	assert.Equal(t, "refresh-1", refresh)

	resp, err := cli.Request(ctx, "/dashboard/stats")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	assert.True(t, cli.Session().IsAuthenticated())

	require.NoError(t, cli.Session().SetToken("stale"))
	resp, err = cli.Request(ctx, "/dashboard/stats")
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, transport.ErrUnauthorized))
	assert.False(t, cli.Session().IsAuthenticated())
	_, ok := cli.Session().RefreshToken()
	assert.False(t, ok)
	assert.Equal(t, []string{navigation.LoginPath}, recorder.History())
}

func TestClient_LoginRejected(t *testing.T) {
	ctx := context.Background()
	cli, recorder := newClient(t)
	require.NoError(t, cli.Session().SetToken("previous"))

	_, err := cli.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, cli.Session().IsAuthenticated())
	assert.Empty(t, recorder.History())

	_, err = cli.Login(ctx, "inactive@example.com", "wrong")
	apiErr := &APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Account is inactive", apiErr.Detail)
}

func TestClient_Register(t *testing.T) {
	ctx := context.Background()
	cli, _ := newClient(t)

	user, err := cli.Register(ctx, &Registration{Email: "new@example.com", Password: "Secret#123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "basic", user.Plan)
	assert.Nil(t, user.FullName)
	assert.Equal(t, 2024, user.CreatedAt.Year())
	assert.False(t, cli.Session().IsAuthenticated())

	_, err = cli.Register(ctx, &Registration{Email: "taken@example.com", Password: "Secret#123"})
	assert.EqualError(t, err, "api error: 400 Email already registered")
}

func TestClient_Logout(t *testing.T) {
	cli, recorder := newClient(t)
	require.NoError(t, cli.Session().SetToken("abc"))
	require.NoError(t, cli.Session().Store().Put(auth.RefreshTokenKey, "r"))

	require.NoError(t, cli.Logout(context.Background()))
	assert.False(t, cli.Session().IsAuthenticated())
	_, ok := cli.Session().RefreshToken()
	assert.False(t, ok)
	assert.Equal(t, []string{navigation.RootPath}, recorder.History())
}

func TestNewAPIError(t *testing.T) {
	testCases := []struct {
		description string
		body        string
		expect      string
	}{
		{description: "string detail", body: `{"detail":"Not found"}`, expect: "Not found"},
		{description: "structured detail", body: `{"detail":[{"loc":["body","email"]}]}`, expect: `[{"loc":["body","email"]}]`},
		{description: "plain body", body: `oops`, expect: "oops"},
		{description: "empty body", body: ``, expect: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			recorder.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = recorder.WriteString(testCase.body)
			apiErr := NewAPIError(recorder.Result())
			assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
			assert.Equal(t, testCase.expect, apiErr.Detail)
		})
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	recorder := httptest.NewRecorder()
	_, _ = recorder.WriteString(`{"total_analyses":`)
	var stats map[string]int
	err := DecodeJSON(recorder.Result(), &stats)
	assert.EqualError(t, err, "failed to decode response: unexpected EOF")
}
