package http

import (
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleCheckIn godoc
//
//	@Summary	Check in for today
//	@Tags		Attendance
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	hrmsapi.Attendance
//	@Failure	401	{object}	httpx.ErrorBody
//	@Failure	409	{object}	httpx.ErrorBody	"Already checked in"
//	@Router		/api/attendance/check-in [post].
func (h *AttendanceHandler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	a, err := h.AttendanceService.CheckIn(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toAttendance(a))
}

// HandleCheckOut godoc
//
//	@Summary		Check out for today
//	@Description	Days shorter than four hours are recorded as half days.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrmsapi.Attendance
//	@Failure		404	{object}	httpx.ErrorBody	"No check-in today"
//	@Failure		409	{object}	httpx.ErrorBody	"Already checked out"
//	@Router			/api/attendance/check-out [post].
func (h *AttendanceHandler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	a, err := h.AttendanceService.CheckOut(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toAttendance(a))
}

// HandleMine godoc
//
//	@Summary	Own attendance
//	@Tags		Attendance
//	@Security	BearerAuth
//	@Produce	json
//	@Param		from	query		string	false	"First date, YYYY-MM-DD"
//	@Param		to		query		string	false	"Last date, YYYY-MM-DD"
//	@Success	200		{array}		hrmsapi.Attendance
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/api/attendance/me [get].
func (h *AttendanceHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.list(w, r, store.AttendanceFilter{
		EmployeeID: httpx.UserIDFromContext(r.Context()),
		From:       q.Get("from"),
		To:         q.Get("to"),
	})
}

// HandleList godoc
//
//	@Summary	List attendance
//	@Tags		Attendance
//	@Security	BearerAuth
//	@Produce	json
//	@Param		employee_id	query		string	false	"Employee ID"
//	@Param		from		query		string	false	"First date, YYYY-MM-DD"
//	@Param		to			query		string	false	"Last date, YYYY-MM-DD"
//	@Success	200			{array}		hrmsapi.Attendance
//	@Failure	400			{object}	httpx.ErrorBody
//	@Failure	403			{object}	httpx.ErrorBody
//	@Router		/api/attendance [get].
func (h *AttendanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.list(w, r, store.AttendanceFilter{
		EmployeeID: q.Get("employee_id"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	})
}

func (h *AttendanceHandler) list(w http.ResponseWriter, r *http.Request, f store.AttendanceFilter) {
	list, err := h.AttendanceService.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, mapSlice(list, toAttendance))
}

// HandleSet godoc
//
//	@Summary		Set attendance
//	@Description	Creates or replaces the status of one employee on one date, keeping any check-in and check-out times.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrmsapi.SetAttendanceRequest	true	"Record"
//	@Success		200		{object}	hrmsapi.Attendance
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Router			/api/attendance [put].
func (h *AttendanceHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.SetAttendanceRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.AttendanceService.Set(r.Context(), actorFrom(r), service.SetAttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     domain.AttendanceStatus(req.Status),
		Note:       req.Note,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toAttendance(a))
}
