// Package client implements the remote API surface of the souk backend
// (REST over HTTP) and the bootstrap of the client's local database.
package client
