package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soukclient/internal/client/client"
	"soukclient/internal/client/models"
	"soukclient/internal/client/navigation"
	"soukclient/internal/client/validation"
	"soukclient/internal/logging"
)

// ---- fakes ----

type fakeClient struct {
	LoginRet  string
	LoginErr  error
	LoginCall int

	LastLoginUser string
	LastLoginPass string

	SignupRet  string
	SignupErr  error
	SignupCall int

	UpdateRet  string
	UpdateErr  error
	UpdateCall int
	LastDraft  models.ProfileDraft

	RequestOTPErr  error
	RequestOTPCall int
	LastOTPEmail   string

	VerifyOTPErr  error
	VerifyOTPCall int
	LastVerifyOTP string

	CategoriesRet       []models.Category
	CategoriesErr       error
	LastCategoriesToken string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.LoginCall++
	f.LastLoginUser = username
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) InitialSignup(ctx context.Context, email, password string) (string, error) {
	f.SignupCall++
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, draft models.ProfileDraft) (string, error) {
	f.UpdateCall++
	f.LastDraft = draft
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) RequestOTP(ctx context.Context, email string) error {
	f.RequestOTPCall++
	f.LastOTPEmail = email
	return f.RequestOTPErr
}

func (f *fakeClient) VerifyOTP(ctx context.Context, email, otp, newPassword string) error {
	f.VerifyOTPCall++
	f.LastVerifyOTP = otp
	return f.VerifyOTPErr
}

func (f *fakeClient) Categories(ctx context.Context, token string) ([]models.Category, error) {
	f.LastCategoriesToken = token
	return f.CategoriesRet, f.CategoriesErr
}

type fakeRouter struct {
	Navigations int
	LastTo      navigation.Screen
	LastParams  navigation.Params
	NavErr      error
}

func (f *fakeRouter) Navigate(to navigation.Screen, params navigation.Params) error {
	if f.NavErr != nil {
		return f.NavErr
	}
	f.Navigations++
	f.LastTo = to
	f.LastParams = params
	return nil
}

func (f *fakeRouter) Current() navigation.Screen { return f.LastTo }
func (f *fakeRouter) Param(string) (string, bool) { return "", false }

type fakeSessions struct {
	Token    string
	GetErr   error
	SetErr   error
	ClearErr error

	SetCalls   int
	ClearCalls int
}

func (f *fakeSessions) Get(ctx context.Context) (string, error) { return f.Token, f.GetErr }

func (f *fakeSessions) Set(ctx context.Context, token string) error {
	f.SetCalls++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.Token = token
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Token = ""
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuth(c *fakeClient, s *fakeSessions, r *fakeRouter) AuthService {
	return NewAuthService(c, s, r, testLogger())
}

func validationKey(t *testing.T, err error) string {
	t.Helper()
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	return verr.Key
}

// ---- Login ----

func TestLogin_Success(t *testing.T) {
	c := &fakeClient{LoginRet: "tok-abc"}
	s := &fakeSessions{}
	r := &fakeRouter{}

	err := newAuth(c, s, r).Login(context.Background(), "john", "Abcd123!")

	require.NoError(t, err)
	assert.Equal(t, "john", c.LastLoginUser)
	assert.Equal(t, "tok-abc", s.Token)
	assert.Equal(t, navigation.ScreenHome, r.LastTo)
}

func TestLogin_EmptyCredentialsSkipNetwork(t *testing.T) {
	c := &fakeClient{}
	err := newAuth(c, &fakeSessions{}, &fakeRouter{}).Login(context.Background(), "", "pw")

	assert.Equal(t, "loginFailed", validationKey(t, err))
	assert.Zero(t, c.LoginCall, "no network call on validation failure")
}

func TestLogin_UnauthorizedLeavesSessionUntouched(t *testing.T) {
	c := &fakeClient{LoginErr: &client.HTTPError{Status: http.StatusUnauthorized, Message: "wrong credentials"}}
	s := &fakeSessions{}
	r := &fakeRouter{}

	err := newAuth(c, s, r).Login(context.Background(), "john", "bad")

	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "wrong credentials", httpErr.Message)
	assert.Zero(t, s.SetCalls, "session store must not be written on failure")
	assert.Zero(t, r.Navigations)
}

func TestLogin_SessionWriteFailureSurfaces(t *testing.T) {
	c := &fakeClient{LoginRet: "tok"}
	s := &fakeSessions{SetErr: errors.New("disk full")}
	r := &fakeRouter{}

	err := newAuth(c, s, r).Login(context.Background(), "john", "pw")

	assert.Error(t, err)
	assert.Zero(t, r.Navigations, "no navigation when the token was not persisted")
}

// ---- InitialSignup ----

func TestInitialSignup_Success(t *testing.T) {
	c := &fakeClient{SignupRet: "pending-42"}
	r := &fakeRouter{}

	err := newAuth(c, &fakeSessions{}, r).InitialSignup(context.Background(), "user@example.com", "Abcd123!", "Abcd123!")

	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenAdditionalInfo, r.LastTo)
	assert.Equal(t, "pending-42", r.LastParams[navigation.ParamUserID])
}

func TestInitialSignup_ValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
		wantKey  string
	}{
		{"bad email wins first", "user@example", "weak", "other", "invalidEmail"},
		{"bad password before mismatch", "user@example.com", "weak", "other", "invalidPassword"},
		{"mismatch last", "user@example.com", "Abcd123!", "Abcd123?", "passwordsDontMatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{}
			err := newAuth(c, &fakeSessions{}, &fakeRouter{}).InitialSignup(context.Background(), tt.email, tt.password, tt.confirm)

			assert.Equal(t, tt.wantKey, validationKey(t, err))
			assert.Zero(t, c.SignupCall, "no network call on validation failure")
		})
	}
}

func TestInitialSignup_MissingUserID(t *testing.T) {
	c := &fakeClient{SignupRet: ""}
	r := &fakeRouter{}

	err := newAuth(c, &fakeSessions{}, r).InitialSignup(context.Background(), "user@example.com", "Abcd123!", "Abcd123!")

	assert.Equal(t, "userIdNotProvided", validationKey(t, err))
	assert.Zero(t, r.Navigations)
}

// ---- CompleteProfile ----

func validDraft() models.ProfileDraft {
	return models.ProfileDraft{
		ID:          "pending-42",
		Username:    "john_doe1",
		City:        "Casablanca",
		PhoneNumber: "0612345678",
		Location:    "33.5731,-7.5898",
	}
}

func TestCompleteProfile_Success(t *testing.T) {
	c := &fakeClient{UpdateRet: "tok-xyz"}
	s := &fakeSessions{}
	r := &fakeRouter{}

	err := newAuth(c, s, r).CompleteProfile(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Equal(t, validDraft(), c.LastDraft)
	assert.Equal(t, "tok-xyz", s.Token)
	assert.Equal(t, navigation.ScreenHome, r.LastTo)
}

func TestCompleteProfile_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ProfileDraft)
		wantKey string
	}{
		{"username first", func(d *models.ProfileDraft) { d.Username = "ab"; d.PhoneNumber = "x" }, "invalidUsername"},
		{"phone second", func(d *models.ProfileDraft) { d.PhoneNumber = "0512345678"; d.City = "" }, "invalidPhoneNumber"},
		{"city third", func(d *models.ProfileDraft) { d.City = ""; d.Location = "" }, "selectCity"},
		{"location last", func(d *models.ProfileDraft) { d.Location = "" }, "locationError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{}
			draft := validDraft()
			tt.mutate(&draft)

			err := newAuth(c, &fakeSessions{}, &fakeRouter{}).CompleteProfile(context.Background(), draft)

			assert.Equal(t, tt.wantKey, validationKey(t, err))
			assert.Zero(t, c.UpdateCall)
		})
	}
}

// ---- Password reset ----

func TestRequestPasswordReset_Success(t *testing.T) {
	c := &fakeClient{}
	r := &fakeRouter{}

	err := newAuth(c, &fakeSessions{}, r).RequestPasswordReset(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", c.LastOTPEmail)
	assert.Equal(t, navigation.ScreenResetOTPConfirm, r.LastTo)
	assert.Equal(t, "user@example.com", r.LastParams[navigation.ParamEmail])
}

func TestRequestPasswordReset_BadEmailSkipsNetwork(t *testing.T) {
	c := &fakeClient{}
	err := newAuth(c, &fakeSessions{}, &fakeRouter{}).RequestPasswordReset(context.Background(), "user.example.com")

	assert.Equal(t, "invalidEmail", validationKey(t, err))
	assert.Zero(t, c.RequestOTPCall)
}

func TestConfirmPasswordReset_Success(t *testing.T) {
	c := &fakeClient{}
	s := &fakeSessions{}
	r := &fakeRouter{}

	err := newAuth(c, s, r).ConfirmPasswordReset(context.Background(), "user@example.com", "123456", "Abcd123!")

	require.NoError(t, err)
	assert.Equal(t, "123456", c.LastVerifyOTP)
	assert.Equal(t, navigation.ScreenLogin, r.LastTo)
	assert.Zero(t, s.SetCalls, "a reset does not create a session")
}

func TestConfirmPasswordReset_WeakPasswordSkipsNetwork(t *testing.T) {
	c := &fakeClient{}
	err := newAuth(c, &fakeSessions{}, &fakeRouter{}).ConfirmPasswordReset(context.Background(), "user@example.com", "123456", "weak")

	assert.Equal(t, "invalidPassword", validationKey(t, err))
	assert.Zero(t, c.VerifyOTPCall)
}

func TestConfirmPasswordReset_ServerRejection(t *testing.T) {
	c := &fakeClient{VerifyOTPErr: &client.HTTPError{Status: http.StatusBadRequest}}
	r := &fakeRouter{}

	err := newAuth(c, &fakeSessions{}, r).ConfirmPasswordReset(context.Background(), "user@example.com", "000000", "Abcd123!")

	var httpErr *client.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Zero(t, r.Navigations)
}

// ---- Logout ----

func TestLogout_ClearsSessionAndReturnsToLogin(t *testing.T) {
	s := &fakeSessions{Token: "tok"}
	r := &fakeRouter{}

	err := newAuth(&fakeClient{}, s, r).Logout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "", s.Token)
	assert.Equal(t, navigation.ScreenLogin, r.LastTo)
}
