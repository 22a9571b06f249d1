// Package auth keeps the client session: the access token and its refresh
// companion, stored under fixed keys in a store.Store.
//
// Call sites never touch the underlying storage directly; a presence check on
// the access token is the whole of "authenticated".
package auth
