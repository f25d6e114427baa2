package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ListUsers returns every user record visible to the caller.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return &user, nil
}

// CreateUser creates a user record. Required fields are checked locally so a
// half-filled form never reaches the wire.
func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	if err := validateUserFields(in.Name, in.Email, in.Role); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/users", in, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// UpdateUser replaces the mutable fields of an existing user.
func (c *Client) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := validateUserFields(in.Name, in.Email, in.Role); err != nil {
		return nil, err
	}
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, in, &user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return &user, nil
}

// DeleteUser removes a user record.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

func validateUserFields(name, email string, role Role) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, string(role))
	}
	return nil
}
