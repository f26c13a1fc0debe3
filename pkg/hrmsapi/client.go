package hrmsapi

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to an HRMS server. A Client without a token can only log in
// and probe health; use WithToken for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is sent as "Authorization: Bearer <Token>" when set.
	Token string
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}
