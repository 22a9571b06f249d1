// Package store defines the durable key-value storage that holds session
// tokens between runs.
//
// A Store mirrors the browser's origin-scoped storage: plain string values
// under fixed string keys. It ships with an in-memory implementation for tests,
// an afs-backed file implementation for terminal use and, when compiled for
// js/wasm, a window.localStorage wrapper.
package store
