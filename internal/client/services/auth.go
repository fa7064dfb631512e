// Package services contains the application services of the souk client.
// This file defines the auth flow controller: login, two-step signup,
// OTP-based password reset, and logout.
package services

import (
	"context"
	"fmt"

	"soukclient/internal/client/client"
	"soukclient/internal/client/models"
	"soukclient/internal/client/navigation"
	"soukclient/internal/client/repositories/session"
	"soukclient/internal/client/validation"
	"soukclient/internal/logging"
)

// AuthService orchestrates the authentication flows.
//
// Contract:
//   - Every operation validates its input client-side before any network
//     call and short-circuits on the first failing rule.
//   - A successful Login or CompleteProfile persists the returned token and
//     signals the router; a failure leaves the session store untouched.
//   - Errors come back to the screen layer unwrapped enough for errors.Is /
//     errors.As: *validation.Error, *client.HTTPError, client.ErrUnavailable.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	InitialSignup(ctx context.Context, email, password, confirm string) error
	CompleteProfile(ctx context.Context, draft models.ProfileDraft) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions session.Repository
	router   navigation.Router
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store and router.
func NewAuthService(c client.Client, sessions session.Repository, router navigation.Router, log logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, router: router, log: log}
}

// Login posts the credentials and, on success, stores the returned raw body
// as the session token and moves to the home screen. The only client-side
// rule is that both fields are non-empty.
func (a *authService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return &validation.Error{Key: "loginFailed"}
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.sessions.Set(ctx, token); err != nil {
		return fmt.Errorf("storing session token: %w", err)
	}

	a.log.Info(ctx, "login succeeded", "username", username)
	return a.router.Navigate(navigation.ScreenHome, nil)
}

// InitialSignup validates email shape, password strength and the
// confirmation match, in that order. On success the pending user id is
// carried into the additional-info screen.
func (a *authService) InitialSignup(ctx context.Context, email, password, confirm string) error {
	if err := validation.Email(email); err != nil {
		return err
	}
	if err := validation.Password(password); err != nil {
		return err
	}
	if err := validation.PasswordsMatch(password, confirm); err != nil {
		return err
	}

	userID, err := a.client.InitialSignup(ctx, email, password)
	if err != nil {
		return err
	}
	if userID == "" {
		return &validation.Error{Key: "userIdNotProvided"}
	}

	a.log.Info(ctx, "initial signup accepted", "email", email)
	return a.router.Navigate(navigation.ScreenAdditionalInfo, navigation.Params{
		navigation.ParamUserID: userID,
	})
}

// CompleteProfile validates username, phone number, city choice and the
// obtained location, in that order, then submits the draft. The returned
// token is stored and the user lands on the home screen.
func (a *authService) CompleteProfile(ctx context.Context, draft models.ProfileDraft) error {
	if err := validation.Username(draft.Username); err != nil {
		return err
	}
	if err := validation.PhoneNumber(draft.PhoneNumber); err != nil {
		return err
	}
	if draft.City == "" {
		return &validation.Error{Key: "selectCity"}
	}
	if draft.Location == "" {
		return &validation.Error{Key: "locationError"}
	}

	token, err := a.client.UpdateProfile(ctx, draft)
	if err != nil {
		return err
	}

	if err := a.sessions.Set(ctx, token); err != nil {
		return fmt.Errorf("storing session token: %w", err)
	}

	a.log.Info(ctx, "profile completed", "username", draft.Username)
	return a.router.Navigate(navigation.ScreenHome, nil)
}

// RequestPasswordReset validates the email shape and asks the server for a
// one-time code. On success the email is carried into the confirmation
// screen.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validation.Email(email); err != nil {
		return err
	}

	if err := a.client.RequestOTP(ctx, email); err != nil {
		return err
	}

	a.log.Info(ctx, "otp requested", "email", email)
	return a.router.Navigate(navigation.ScreenResetOTPConfirm, navigation.Params{
		navigation.ParamEmail: email,
	})
}

// ConfirmPasswordReset validates the new password's strength and submits
// the code. On success the user returns to the login screen; no session is
// created.
func (a *authService) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error {
	if err := validation.Password(newPassword); err != nil {
		return err
	}

	if err := a.client.VerifyOTP(ctx, email, otp, newPassword); err != nil {
		return err
	}

	a.log.Info(ctx, "password reset confirmed", "email", email)
	return a.router.Navigate(navigation.ScreenLogin, nil)
}

// Logout clears the stored token and returns to the login screen.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	a.log.Info(ctx, "logged out")
	return a.router.Navigate(navigation.ScreenLogin, nil)
}
