package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/hrms/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	m := httpx.NewMetrics("hrms")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := httpx.Chain(mux, m.Middleware())

	for _, path := range []string{"/api/employees/1", "/api/employees/2", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	n, err := testutil.GatherAndCount(m.Registry(), "hrms_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, n, "one series per route and code")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `hrms_http_requests_total{code="418",route="GET /api/employees/{id}"} 2`)
	require.Contains(t, rec.Body.String(), `route="unmatched"`)
}

func TestMetricsRejections(t *testing.T) {
	m := httpx.NewMetrics("hrms")
	gate := httpx.NewGate(gateVerifier(t, gateNow))
	gate.OnReject = m.ObserveRejection

	serve(t, gate.Require(nil), &captureHandler{}, "")
	serve(t, gate.Require(nil), &captureHandler{}, "Token x")
	serve(t, gate.Require(nil), &captureHandler{}, "Bearer x")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, rec.Body.String(), `hrms_auth_rejections_total{reason="missing_token"} 2`)
	require.Contains(t, rec.Body.String(), `hrms_auth_rejections_total{reason="invalid_token"} 1`)
}
