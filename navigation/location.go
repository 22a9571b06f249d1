//go:build js && wasm

package navigation

import (
	"context"
	"syscall/js"
)

// Location navigates by assigning window.location.href. The page unloads
// afterwards, so nothing runs on it once navigation starts.
type Location struct{}

func (Location) Navigate(_ context.Context, path string) error {
	js.Global().Get("window").Get("location").Set("href", path)
	return nil
}
