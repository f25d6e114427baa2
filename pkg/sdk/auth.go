package sdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Login exchanges an email/password pair for an access token and profile via
// POST /api/auth/login. The server also sets the refresh cookie on the
// client's jar; the application never reads it.
//
// A 4xx rejection surfaces as ErrInvalidCredentials so callers can leave any
// existing session untouched. Validation failures are reported before any
// request is sent.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		AccessToken string   `json:"accessToken"`
		User        Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		return nil, fmt.Errorf("login response missing token or user profile")
	}

	return &Credentials{
		AccessToken: resp.AccessToken,
		TokenType:   "Bearer",
		Identity:    resp.User.Normalize(),
	}, nil
}

// RefreshToken obtains a new access token via GET /api/auth/refresh, relying
// on the refresh cookie held in the client's jar. A 4xx rejection means the
// refresh credential is expired or revoked and surfaces as ErrSessionExpired;
// anything else is a transport failure for the caller to treat as transient.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/refresh", nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return "", ErrSessionExpired
		}
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	return resp.AccessToken, nil
}
