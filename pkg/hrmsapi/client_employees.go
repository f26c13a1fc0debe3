package hrmsapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListEmployees(ctx context.Context, f EmployeeFilter) ([]Employee, error) {
	q := url.Values{}
	setIf(q, "department", f.Department)
	setIf(q, "role", f.Role)
	setIf(q, "status", f.Status)

	var out []Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", q, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(id), nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", nil, req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(id), nil, req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
