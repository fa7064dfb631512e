// Package session persists the single opaque session token in the client's
// local sqlite database. At most one token exists at a time; its presence is
// the only signal of authentication state.
package session

import "context"

// TokenKey is the fixed key the token is stored under.
const TokenKey = "authToken"

// Repository is the durable store for the session token.
//
// Get returns an empty string (and no error) when no token is stored.
// An error from Get means the storage itself failed; callers that only
// need a best-effort read treat that as "absent" (fail-open to the
// unauthenticated state).
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
