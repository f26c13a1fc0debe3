package hrmsapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CheckIn(ctx context.Context) (*Attendance, error) {
	var out Attendance
	if err := c.do(ctx, http.MethodPost, "/api/attendance/check-in", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckOut(ctx context.Context) (*Attendance, error) {
	var out Attendance
	if err := c.do(ctx, http.MethodPost, "/api/attendance/check-out", nil, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyAttendance lists the caller's records between from and to (inclusive,
// YYYY-MM-DD, either may be empty).
func (c *Client) MyAttendance(ctx context.Context, from, to string) ([]Attendance, error) {
	q := url.Values{}
	setIf(q, "from", from)
	setIf(q, "to", to)

	var out []Attendance
	if err := c.do(ctx, http.MethodGet, "/api/attendance/me", q, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAttendance(ctx context.Context, f AttendanceFilter) ([]Attendance, error) {
	q := url.Values{}
	setIf(q, "employee_id", f.EmployeeID)
	setIf(q, "from", f.From)
	setIf(q, "to", f.To)

	var out []Attendance
	if err := c.do(ctx, http.MethodGet, "/api/attendance", q, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetAttendance(ctx context.Context, req SetAttendanceRequest) (*Attendance, error) {
	var out Attendance
	if err := c.do(ctx, http.MethodPut, "/api/attendance", nil, req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
