// Package validation holds the client-side input rules checked before any
// network call is made. Each rule mirrors the server's expectations; the
// server remains the final authority.
package validation

// Error is a validation failure carrying a message key into the localized
// string table. Screens resolve the key to the user's language.
type Error struct {
	Key string
}

func (e *Error) Error() string {
	return "validation failed: " + e.Key
}

func newError(key string) error {
	return &Error{Key: key}
}
