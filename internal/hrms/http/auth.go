package http

import (
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

type AuthHandler struct {
	AuthService     *service.AuthService
	EmployeeService *service.EmployeeService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a bearer token. Unknown emails, wrong passwords and inactive accounts all fail the same way.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrmsapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	hrmsapi.LoginResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody	"Invalid email or password"
//	@Failure		429		{object}	httpx.ErrorBody
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	tok, e, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, hrmsapi.LoginResponse{
		Token:     tok.Token,
		ExpiresAt: tok.ExpiresAt,
		Employee:  toEmployee(e),
	})
}

// HandleMe godoc
//
//	@Summary	Current employee
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	hrmsapi.Employee
//	@Failure	401	{object}	httpx.ErrorBody
//	@Router		/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	e, err := h.EmployeeService.Get(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toEmployee(e))
}

// HandleChangePassword godoc
//
//	@Summary	Change own password
//	@Tags		Auth
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	hrmsapi.ChangePasswordRequest	true	"Current and new password"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorBody
//	@Failure	401	{object}	httpx.ErrorBody
//	@Router		/api/auth/password [put].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}

	err := h.AuthService.ChangePassword(r.Context(), httpx.UserIDFromContext(r.Context()), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
