package client

import (
	"context"

	"soukclient/internal/client/models"
)

// Client is the remote API surface the screens depend on. Every call is a
// single one-shot request: no retries, no client-side timeout policy.
// Cancellation is the caller's business via ctx.
type Client interface {
	Close() error

	// Login exchanges credentials for a session token (the raw response body).
	Login(ctx context.Context, username, password string) (string, error)

	// InitialSignup creates a pending account and returns its user id.
	InitialSignup(ctx context.Context, email, password string) (string, error)

	// UpdateProfile completes a pending signup and returns a session token.
	UpdateProfile(ctx context.Context, draft models.ProfileDraft) (string, error)

	// RequestOTP asks the server to send a one-time code to email.
	RequestOTP(ctx context.Context, email string) error

	// VerifyOTP submits the code together with the new password.
	VerifyOTP(ctx context.Context, email, otp, newPassword string) error

	// Categories lists the catalog; token, when non-empty, is attached as a
	// bearer credential.
	Categories(ctx context.Context, token string) ([]models.Category, error)
}
