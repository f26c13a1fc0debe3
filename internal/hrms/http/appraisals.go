package http

import (
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

type AppraisalsHandler struct {
	AppraisalService *service.AppraisalService
}

// HandleCreate godoc
//
//	@Summary		Submit an appraisal
//	@Description	The caller becomes the reviewer. Reviewing yourself is rejected.
//	@Tags			Appraisals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrmsapi.AppraisalRequest	true	"Appraisal"
//	@Success		201		{object}	hrmsapi.Appraisal
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Router			/api/appraisals [post].
func (h *AppraisalsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.AppraisalRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.AppraisalService.Create(r.Context(), actorFrom(r), service.AppraisalInput{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		Rating:     req.Rating,
		Comments:   req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, toAppraisal(a))
}

// HandleUpdate godoc
//
//	@Summary	Edit an appraisal
//	@Tags		Appraisals
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Appraisal ID"
//	@Param		request	body		hrmsapi.UpdateAppraisalRequest	true	"Changes"
//	@Success	200		{object}	hrmsapi.Appraisal
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Failure	409		{object}	httpx.ErrorBody	"Already acknowledged"
//	@Router		/api/appraisals/{id} [put].
func (h *AppraisalsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.UpdateAppraisalRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.AppraisalService.Update(r.Context(), actorFrom(r), r.PathValue("id"), service.AppraisalUpdate{
		Period:   req.Period,
		Rating:   req.Rating,
		Comments: req.Comments,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toAppraisal(a))
}

// HandleList godoc
//
//	@Summary	List appraisals
//	@Tags		Appraisals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		employee_id	query	string	false	"Employee ID"
//	@Success	200			{array}	hrmsapi.Appraisal
//	@Router		/api/appraisals [get].
func (h *AppraisalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, r.URL.Query().Get("employee_id"))
}

// HandleMine godoc
//
//	@Summary	Own appraisals
//	@Tags		Appraisals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	hrmsapi.Appraisal
//	@Router		/api/appraisals/me [get].
func (h *AppraisalsHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, httpx.UserIDFromContext(r.Context()))
}

func (h *AppraisalsHandler) list(w http.ResponseWriter, r *http.Request, employeeID string) {
	list, err := h.AppraisalService.List(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, mapSlice(list, toAppraisal))
}

// HandleAcknowledge godoc
//
//	@Summary	Acknowledge an appraisal
//	@Tags		Appraisals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Appraisal ID"
//	@Success	200	{object}	hrmsapi.Appraisal
//	@Failure	403	{object}	httpx.ErrorBody	"Not your appraisal"
//	@Failure	404	{object}	httpx.ErrorBody
//	@Failure	409	{object}	httpx.ErrorBody
//	@Router		/api/appraisals/{id}/acknowledge [post].
func (h *AppraisalsHandler) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	a, err := h.AppraisalService.Acknowledge(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toAppraisal(a))
}
