package hrmsapi

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		LoginRequest{Email: email, Password: password}, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the employee the token belongs to.
func (c *Client) Me(ctx context.Context) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	resp, err := c.doRequest(ctx, http.MethodPut, "/api/auth/password", nil,
		ChangePasswordRequest{CurrentPassword: current, NewPassword: next})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
