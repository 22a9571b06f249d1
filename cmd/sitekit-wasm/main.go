//go:build js && wasm

// Command sitekit-wasm runs the client toolkit inside a browser page and
// exposes it to page scripts as the global `sitekit` object.
package main

import (
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/sitekit/auth"
	"github.com/viant/sitekit/client"
	"github.com/viant/sitekit/format"
	"github.com/viant/sitekit/navigation"
	"github.com/viant/sitekit/notify"
	"github.com/viant/sitekit/store"
	"github.com/viant/sitekit/transport"
	"github.com/viant/sitekit/ui"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"syscall/js"
)

type app struct {
	session  *auth.Session
	client   *client.Client
	dom      *ui.DOM
	notifier *notify.Notifier
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: consoleWriter{}, NoColor: true})

	session := auth.NewSession(store.NewLocalStorage())
	origin := js.Global().Get("location").Get("origin").String()
	a := &app{
		session:  session,
		client:   client.New(origin, session, client.WithNavigator(navigation.Location{})),
		dom:      ui.NewDOM(),
		notifier: notify.New(notify.NewBody()),
	}
	a.export()
	a.dom.OnContentLoaded(ui.NewPage(a.dom, session).Ready)
	select {}
}

func (a *app) export() {
	api := js.Global().Get("Object").New()
	api.Set("getToken", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if token, ok := a.session.Token(); ok {
			return token
		}
		return js.Null()
	}))
	api.Set("setToken", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if err := a.session.SetToken(argString(args, 0)); err != nil {
			log.Err(err).Msg("failed to set token")
		}
		return nil
	}))
	api.Set("removeToken", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if err := a.session.RemoveToken(); err != nil {
			log.Err(err).Msg("failed to remove token")
		}
		return nil
	}))
	api.Set("isAuthenticated", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return a.session.IsAuthenticated()
	}))
	api.Set("updateAuthUI", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ui.UpdateAuthUI(a.dom, a.session)
		return nil
	}))
	api.Set("logout", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return promise(func() (interface{}, error) {
			return nil, a.client.Logout(context.Background())
		})
	}))
	api.Set("login", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		email, password := argString(args, 0), argString(args, 1)
		return promise(func() (interface{}, error) {
			if _, err := a.client.Login(context.Background(), email, password); err != nil {
				return nil, err
			}
			ui.UpdateAuthUI(a.dom, a.session)
			return true, nil
		})
	}))
	api.Set("apiRequest", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		endpoint := argString(args, 0)
		options := requestOptions(args)
		return promise(func() (interface{}, error) {
			return a.apiRequest(endpoint, options)
		})
	}))
	api.Set("showNotification", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		a.notifier.Show(argString(args, 0), notify.Kind(argString(args, 1)))
		return nil
	}))
	api.Set("formatDate", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return format.Date(argString(args, 0))
	}))
	api.Set("getScoreColor", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return format.ScoreColor(argFloat(args, 0))
	}))
	api.Set("getScoreBgColor", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return format.ScoreBgColor(argFloat(args, 0))
	}))
	js.Global().Set("sitekit", api)
}

// apiRequest resolves to a fetch Response, or null once the session expired.
func (a *app) apiRequest(endpoint string, options []client.RequestOption) (interface{}, error) {
	resp, err := a.client.Request(context.Background(), endpoint, options...)
	if errors.Is(err, transport.ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return newResponse(resp, body), nil
}

// newResponse rebuilds resp as a JS Response so callers keep json(), blob() and headers.
func newResponse(resp *http.Response, body []byte) js.Value {
	headers := js.Global().Get("Headers").New()
	for key, values := range resp.Header {
		for _, value := range values {
			headers.Call("append", key, value)
		}
	}
	init := js.Global().Get("Object").New()
	init.Set("status", resp.StatusCode)
	init.Set("statusText", strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))))
	init.Set("headers", headers)

	payload := js.Null()
	if !nullBodyStatus(resp.StatusCode) {
		payload = js.Global().Get("Uint8Array").New(len(body))
		js.CopyBytesToJS(payload, body)
	}
	return js.Global().Get("Response").New(payload, init)
}

// nullBodyStatus reports statuses the Response constructor rejects a body for.
func nullBodyStatus(status int) bool {
	switch status {
	case http.StatusSwitchingProtocols, http.StatusNoContent, http.StatusResetContent, http.StatusNotModified:
		return true
	}
	return false
}

func requestOptions(args []js.Value) []client.RequestOption {
	if len(args) < 2 || args[1].Type() != js.TypeObject {
		return nil
	}
	value := args[1]
	var ret []client.RequestOption
	if method := value.Get("method"); method.Type() == js.TypeString {
		ret = append(ret, client.WithMethod(strings.ToUpper(method.String())))
	}
	if body := value.Get("body"); body.Type() == js.TypeString {
		ret = append(ret, client.WithBody(strings.NewReader(body.String())))
	}
	if headers := value.Get("headers"); headers.Type() == js.TypeObject {
		keys := js.Global().Get("Object").Call("keys", headers)
		for i := 0; i < keys.Length(); i++ {
			key := keys.Index(i).String()
			ret = append(ret, client.WithHeader(key, headers.Get(key).String()))
		}
	}
	return ret
}

// promise runs fn on a goroutine; blocking calls must not run on the JS event loop.
func promise(fn func() (interface{}, error)) js.Value {
	var executor js.Func
	executor = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		resolve, reject := args[0], args[1]
		go func() {
			defer executor.Release()
			result, err := fn()
			if err != nil {
				reject.Invoke(js.Global().Get("Error").New(err.Error()))
				return
			}
			if result == nil {
				resolve.Invoke(js.Null())
				return
			}
			resolve.Invoke(result)
		}()
		return nil
	})
	return js.Global().Get("Promise").New(executor)
}

// argString converts like String(value); a missing or undefined argument is "".
func argString(args []js.Value, index int) string {
	if index >= len(args) || args[index].IsUndefined() {
		return ""
	}
	if args[index].Type() == js.TypeString {
		return args[index].String()
	}
	return js.Global().Get("String").Invoke(args[index]).String()
}

// argFloat converts like Number(value); a missing argument is NaN.
func argFloat(args []js.Value, index int) float64 {
	if index >= len(args) {
		return math.NaN()
	}
	return js.Global().Get("Number").Invoke(args[index]).Float()
}

type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
