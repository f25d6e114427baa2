package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ListOrganizations returns every tenant organization.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.do(ctx, http.MethodGet, "/api/organizations", nil, &orgs); err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// GetOrganization retrieves a single organization by id.
func (c *Client) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrInvalidInput)
	}
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/api/organizations/"+id, nil, &org); err != nil {
		return nil, fmt.Errorf("failed to get organization %s: %w", id, err)
	}
	return &org, nil
}

// CreateOrganization creates a tenant organization.
func (c *Client) CreateOrganization(ctx context.Context, in OrganizationInput) (*Organization, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: organization name is required", ErrInvalidInput)
	}
	var org Organization
	if err := c.do(ctx, http.MethodPost, "/api/organizations", in, &org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return &org, nil
}

// UpdateOrganization replaces the mutable fields of an organization.
// The API exposes no delete for organizations; tenants are only ever
// deactivated server-side.
func (c *Client) UpdateOrganization(ctx context.Context, id string, in OrganizationInput) (*Organization, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: organization name is required", ErrInvalidInput)
	}
	var org Organization
	if err := c.do(ctx, http.MethodPut, "/api/organizations/"+id, in, &org); err != nil {
		return nil, fmt.Errorf("failed to update organization %s: %w", id, err)
	}
	return &org, nil
}
