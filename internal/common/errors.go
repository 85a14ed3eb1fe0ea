// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrNetwork  = errors.New("network error")
	ErrNotFound = errors.New("not found")

	// Action precondition errors.
	ErrEmptyUsername = errors.New("empty username")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrNoActiveGame  = errors.New("no active game")
)
