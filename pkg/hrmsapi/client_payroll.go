package hrmsapi

import (
	"context"
	"net/http"
	"net/url"
)

// GeneratePayroll creates pending payslips for period (YYYY-MM).
func (c *Client) GeneratePayroll(ctx context.Context, period string) (*GeneratePayrollResponse, error) {
	var out GeneratePayrollResponse
	err := c.do(ctx, http.MethodPost, "/api/payroll/generate", nil,
		GeneratePayrollRequest{Period: period}, http.StatusCreated, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePayslip(ctx context.Context, req PayslipRequest) (*Payslip, error) {
	var out Payslip
	if err := c.do(ctx, http.MethodPost, "/api/payroll", nil, req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPayroll(ctx context.Context, f PayrollFilter) ([]Payslip, error) {
	q := url.Values{}
	setIf(q, "employee_id", f.EmployeeID)
	setIf(q, "period", f.Period)
	setIf(q, "status", f.Status)

	var out []Payslip
	if err := c.do(ctx, http.MethodGet, "/api/payroll", q, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyPayslips(ctx context.Context) ([]Payslip, error) {
	var out []Payslip
	if err := c.do(ctx, http.MethodGet, "/api/payroll/me", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PayPayslip(ctx context.Context, id string) (*Payslip, error) {
	var out Payslip
	path := "/api/payroll/" + url.PathEscape(id) + "/pay"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
