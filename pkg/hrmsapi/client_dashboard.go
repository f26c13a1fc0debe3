package hrmsapi

import (
	"context"
	"net/http"
)

func (c *Client) AdminDashboard(ctx context.Context) (*OrgDashboard, error) {
	return c.orgDashboard(ctx, "/api/dashboard/admin")
}

func (c *Client) HRDashboard(ctx context.Context) (*OrgDashboard, error) {
	return c.orgDashboard(ctx, "/api/dashboard/hr")
}

func (c *Client) orgDashboard(ctx context.Context, path string) (*OrgDashboard, error) {
	var out OrgDashboard
	if err := c.do(ctx, http.MethodGet, path, nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EmployeeDashboard(ctx context.Context) (*EmployeeDashboard, error) {
	var out EmployeeDashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/employee", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
