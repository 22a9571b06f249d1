//go:build js && wasm

package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sitekit/format"
	"math"
	"net/http"
	"syscall/js"
	"testing"
	"time"
)

func await(t *testing.T, promise js.Value) js.Value {
	done := make(chan js.Value, 1)
	onResolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		done <- args[0]
		return nil
	})
	defer onResolve.Release()
	promise.Call("then", onResolve)
	select {
	case value := <-done:
		return value
	case <-time.After(5 * time.Second):
		t.Fatal("promise not resolved")
		return js.Undefined()
	}
}

func TestNewResponse(t *testing.T) {
	body := []byte{'%', 'P', 'D', 'F', 0xff, 0x00, 0x80}
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header: http.Header{
			"Content-Type":        {"application/pdf"},
			"Content-Disposition": {"attachment; filename=report.pdf"},
		},
	}
	response := newResponse(resp, body)
	assert.Equal(t, 200, response.Get("status").Int())
	assert.Equal(t, "OK", response.Get("statusText").String())
	assert.True(t, response.Get("ok").Bool())
	assert.Equal(t, "attachment; filename=report.pdf", response.Get("headers").Call("get", "content-disposition").String())
	assert.True(t, response.Get("json").Type() == js.TypeFunction)

	buffer := await(t, response.Call("arrayBuffer"))
	data := js.Global().Get("Uint8Array").New(buffer)
	actual := make([]byte, data.Length())
	js.CopyBytesToGo(actual, data)
	assert.Equal(t, body, actual)
}

func TestNewResponse_JSON(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found", Header: http.Header{}}
	response := newResponse(resp, []byte(`{"detail":"Analysis not found"}`))
	assert.False(t, response.Get("ok").Bool())
	assert.Equal(t, "Not Found", response.Get("statusText").String())
	decoded := await(t, response.Call("json"))
	assert.Equal(t, "Analysis not found", decoded.Get("detail").String())
}

func TestNewResponse_NoContent(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusNoContent, Status: "204 No Content", Header: http.Header{}}
	response := newResponse(resp, nil)
	assert.Equal(t, 204, response.Get("status").Int())
	assert.True(t, response.Get("body").IsNull())
}

func TestArgCoercion(t *testing.T) {
	args := []js.Value{js.ValueOf("85"), js.ValueOf(123), js.Null(), js.Undefined(), js.ValueOf("abc")}

	assert.Equal(t, 85.0, argFloat(args, 0))
	assert.Equal(t, "text-green-600", format.ScoreColor(argFloat(args, 0)))
	assert.True(t, math.IsNaN(argFloat(args, 4)))
	assert.True(t, math.IsNaN(argFloat(args, 9)))
	assert.Equal(t, "text-red-600", format.ScoreColor(argFloat(args, 9)))

	assert.Equal(t, "85", argString(args, 0))
	assert.Equal(t, "123", argString(args, 1))
	assert.Equal(t, "null", argString(args, 2))
	assert.Equal(t, "", argString(args, 3))
	assert.Equal(t, "", argString(args, 9))
	require.Equal(t, "abc", argString(args, 4))
}
