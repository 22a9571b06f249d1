//go:build js && wasm

package store

import (
	"fmt"
	"syscall/js"
)

// LocalStorage wraps window.localStorage.
type LocalStorage struct {
	storage js.Value
}

// NewLocalStorage returns a Store backed by window.localStorage, or an
// in-memory store when the page has no localStorage.
func NewLocalStorage() Store {
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return NewMemoryStore()
	}
	return &LocalStorage{storage: storage}
}

func (l *LocalStorage) Lookup(key string) (string, bool) {
	value := l.storage.Call("getItem", key)
	if value.IsNull() || value.IsUndefined() {
		return "", false
	}
	return value.String(), true
}

// Put fails when the browser rejects the write, e.g. on quota exhaustion.
func (l *LocalStorage) Put(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to set %v: %v", key, r)
		}
	}()
	l.storage.Call("setItem", key, value)
	return nil
}

func (l *LocalStorage) Delete(key string) error {
	l.storage.Call("removeItem", key)
	return nil
}
