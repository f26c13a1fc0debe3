package hrmsapi

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ListEvents returns events overlapping [start, end]. Zero bounds are open.
func (c *Client) ListEvents(ctx context.Context, start, end time.Time) ([]Event, error) {
	q := url.Values{}
	if !start.IsZero() {
		q.Set("start", start.UTC().Format(time.RFC3339))
	}
	if !end.IsZero() {
		q.Set("end", end.UTC().Format(time.RFC3339))
	}

	var out []Event
	if err := c.do(ctx, http.MethodGet, "/api/events", q, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, req EventRequest) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPut, "/api/events/"+url.PathEscape(id), nil, req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
