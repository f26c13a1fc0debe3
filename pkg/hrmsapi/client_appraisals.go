package hrmsapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateAppraisal(ctx context.Context, req AppraisalRequest) (*Appraisal, error) {
	var out Appraisal
	if err := c.do(ctx, http.MethodPost, "/api/appraisals", nil, req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppraisal(ctx context.Context, id string, req UpdateAppraisalRequest) (*Appraisal, error) {
	var out Appraisal
	if err := c.do(ctx, http.MethodPut, "/api/appraisals/"+url.PathEscape(id), nil, req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAppraisals lists appraisals, optionally for one employee.
func (c *Client) ListAppraisals(ctx context.Context, employeeID string) ([]Appraisal, error) {
	q := url.Values{}
	setIf(q, "employee_id", employeeID)

	var out []Appraisal
	if err := c.do(ctx, http.MethodGet, "/api/appraisals", q, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyAppraisals(ctx context.Context) ([]Appraisal, error) {
	var out []Appraisal
	if err := c.do(ctx, http.MethodGet, "/api/appraisals/me", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AcknowledgeAppraisal(ctx context.Context, id string) (*Appraisal, error) {
	var out Appraisal
	path := "/api/appraisals/" + url.PathEscape(id) + "/acknowledge"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
