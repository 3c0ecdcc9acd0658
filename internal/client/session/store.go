// Package session implements the persisted session store: a small local
// key-value table holding the auth token and the cached user profile.
// It is the only state that survives a restart; expiry is enforced solely
// by the backend rejecting stale tokens, never here.
package session

import (
	"context"
	"errors"
)

// Canonical storage keys. "token" holds the opaque bearer token,
// "user" the serialized profile JSON.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

var ErrNotFound = errors.New("session key not found")

// Store is the persisted session contract. Implementations must be durable
// across process restarts until explicitly cleared.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// Replace swaps the stored session for the given token/profile pair in
	// a single atomic write. Either both values land or neither does; a
	// half-written session must never survive.
	Replace(ctx context.Context, token, userJSON string) error
}
