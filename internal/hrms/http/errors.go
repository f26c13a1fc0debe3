package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

const (
	msgBadBody      = "Invalid JSON body"
	msgInternal     = "Internal server error"
	msgInvalidLogin = "Invalid email or password"
	msgForbidden    = "Forbidden"
)

// writeServiceError maps a service error onto a status code. Unknown errors
// are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var code int
	switch {
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, msgInvalidLogin)
		return
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	msg := http.StatusText(code)
	var se *service.Error
	if errors.As(err, &se) && se.Message != "" {
		msg = se.Message
	}
	httpx.WriteError(w, code, msg)
}

// decode reads a JSON body, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return false
	}
	return true
}

func actorFrom(r *http.Request) service.Actor {
	return service.Actor{
		ID:   httpx.UserIDFromContext(r.Context()),
		Role: httpx.RoleFromContext(r.Context()),
	}
}
