// Package cli renders the client's screens on a terminal: login, two-step
// signup, OTP password reset and the category list. The screen the user
// sees is always whatever the navigation router currently points at; the
// bootstrap gate decides where the session starts.
package cli
