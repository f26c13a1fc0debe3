/*
Package hrmsapi provides the wire types of the HRMS HTTP API and a small
client for it.

The server encodes the same types, so anything the client decodes is exactly
what a handler wrote. Every API response uses one of two envelopes:

	{"success": true,  "data": ...}
	{"success": false, "message": "..."}

The health endpoints (/livez and /readyz) are not wrapped.

# Client

	client := hrmsapi.NewClient("http://localhost:8080")

	login, err := client.Login(ctx, "admin@example.com", "secret")
	if err != nil {
		return err
	}
	authed := client.WithToken(login.Token)

	me, err := authed.Me(ctx)

Failed requests return an *APIError carrying the status code and the
server's message:

	var apiErr *hrmsapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// role not allowed for this route
	}

Amounts are integer cents. Dates are YYYY-MM-DD strings and payroll periods
YYYY-MM strings; instants are RFC 3339.
*/
package hrmsapi
