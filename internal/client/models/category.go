// Package models defines the plain data types exchanged with the API.
package models

// Category is a server-defined record. It is read-only on the client and
// fetched fresh on every visit to the home screen, never cached.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}
