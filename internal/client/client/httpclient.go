package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"soukclient/internal/client/models"
	"soukclient/internal/logging"
)

// HTTPClient talks to the souk REST API. One request per call; the server
// decides token validity, the client never inspects the token.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// do issues a single request and returns the raw response body. Transport
// failures wrap ErrUnavailable; non-2xx statuses come back as *HTTPError
// with the message extracted from a JSON error body when present.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, bearer string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api transport failure", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api response", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage pulls the "message" field out of a JSON error body.
// Anything unparseable yields an empty message.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	query := url.Values{}
	query.Set("username", username)
	query.Set("password", password)

	data, err := c.do(ctx, http.MethodPost, "/auth/login", query, nil, "")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *HTTPClient) InitialSignup(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	data, err := c.do(ctx, http.MethodPost, "/auth/initialSignup", nil, bytes.NewReader(payload), "")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, draft models.ProfileDraft) (string, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return "", err
	}

	data, err := c.do(ctx, http.MethodPost, "/auth/updateProfile", nil, bytes.NewReader(payload), "")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *HTTPClient) RequestOTP(ctx context.Context, email string) error {
	// The server expects the bare lowercased address, not JSON.
	body := strings.NewReader(strings.ToLower(email))
	_, err := c.do(ctx, http.MethodPost, "/auth/otp-request", nil, body, "")
	return err
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp, newPassword string) error {
	query := url.Values{}
	query.Set("email", email)
	query.Set("otp", otp)

	// The new password travels as the raw request body.
	_, err := c.do(ctx, http.MethodPost, "/auth/otp-verify", query, strings.NewReader(newPassword), "")
	return err
}

func (c *HTTPClient) Categories(ctx context.Context, token string) ([]models.Category, error) {
	data, err := c.do(ctx, http.MethodGet, "/categories", nil, nil, token)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}
