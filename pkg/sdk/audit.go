package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListAuditLogs fetches the audit trail via GET /api/audit. The response
// wraps the entries in a logs field.
func (c *Client) ListAuditLogs(ctx context.Context) ([]AuditEntry, error) {
	var resp struct {
		Logs []AuditEntry `json:"logs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/audit", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch audit logs: %w", err)
	}
	return resp.Logs, nil
}

// DashboardStats fetches the aggregate counters for the dashboard landing
// page via GET /api/dashboard/stats.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return &stats, nil
}
