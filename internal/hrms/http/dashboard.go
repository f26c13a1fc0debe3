package http

import (
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// HandleOrg godoc
//
//	@Summary		Organisation dashboard
//	@Description	Served at /api/dashboard/admin and /api/dashboard/hr, each under its own access group.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrmsapi.OrgDashboard
//	@Failure		403	{object}	httpx.ErrorBody
//	@Router			/api/dashboard/admin [get]
//	@Router			/api/dashboard/hr [get].
func (h *DashboardHandler) HandleOrg(w http.ResponseWriter, r *http.Request) {
	s, err := h.DashboardService.Org(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toOrgDashboard(s))
}

// HandleEmployee godoc
//
//	@Summary	Personal dashboard
//	@Tags		Dashboard
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	hrmsapi.EmployeeDashboard
//	@Router		/api/dashboard/employee [get].
func (h *DashboardHandler) HandleEmployee(w http.ResponseWriter, r *http.Request) {
	s, err := h.DashboardService.Personal(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toEmployeeDashboard(s))
}
