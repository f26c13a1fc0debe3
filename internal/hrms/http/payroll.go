package http

import (
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

type PayrollHandler struct {
	PayrollService *service.PayrollService
}

// HandleGenerate godoc
//
//	@Summary		Generate payroll
//	@Description	Creates a pending payslip for every active employee that has none for the period. Basic pay is the employee's salary.
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrmsapi.GeneratePayrollRequest	true	"Period, YYYY-MM"
//	@Success		201		{object}	hrmsapi.GeneratePayrollResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Router			/api/payroll/generate [post].
func (h *PayrollHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.GeneratePayrollRequest
	if !decode(w, r, &req) {
		return
	}

	created, err := h.PayrollService.Generate(r.Context(), actorFrom(r), req.Period)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, hrmsapi.GeneratePayrollResponse{
		Created:  len(created),
		Payslips: mapSlice(created, toPayslip),
	})
}

// HandleCreate godoc
//
//	@Summary	Create a payslip
//	@Tags		Payroll
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		hrmsapi.PayslipRequest	true	"Payslip, amounts in cents"
//	@Success	201		{object}	hrmsapi.Payslip
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody	"Unknown employee"
//	@Failure	409		{object}	httpx.ErrorBody	"Period already has a payslip"
//	@Router		/api/payroll [post].
func (h *PayrollHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.PayslipRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := h.PayrollService.Create(r.Context(), actorFrom(r), service.PayslipInput{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		Basic:      req.Basic,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, toPayslip(p))
}

// HandleList godoc
//
//	@Summary	List payslips
//	@Tags		Payroll
//	@Security	BearerAuth
//	@Produce	json
//	@Param		employee_id	query		string	false	"Employee ID"
//	@Param		period		query		string	false	"YYYY-MM"
//	@Param		status		query		string	false	"Status"	Enums(pending, paid)
//	@Success	200			{array}		hrmsapi.Payslip
//	@Failure	400			{object}	httpx.ErrorBody
//	@Failure	403			{object}	httpx.ErrorBody
//	@Router		/api/payroll [get].
func (h *PayrollHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.list(w, r, store.PayrollFilter{
		EmployeeID: q.Get("employee_id"),
		Period:     q.Get("period"),
		Status:     domain.PayslipStatus(q.Get("status")),
	})
}

// HandleMine godoc
//
//	@Summary	Own payslips
//	@Tags		Payroll
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	hrmsapi.Payslip
//	@Router		/api/payroll/me [get].
func (h *PayrollHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PayrollFilter{EmployeeID: httpx.UserIDFromContext(r.Context())})
}

func (h *PayrollHandler) list(w http.ResponseWriter, r *http.Request, f store.PayrollFilter) {
	list, err := h.PayrollService.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, mapSlice(list, toPayslip))
}

// HandlePay godoc
//
//	@Summary	Mark a payslip paid
//	@Tags		Payroll
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Payslip ID"
//	@Success	200	{object}	hrmsapi.Payslip
//	@Failure	404	{object}	httpx.ErrorBody
//	@Failure	409	{object}	httpx.ErrorBody	"Already paid"
//	@Router		/api/payroll/{id}/pay [post].
func (h *PayrollHandler) HandlePay(w http.ResponseWriter, r *http.Request) {
	p, err := h.PayrollService.Pay(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toPayslip(p))
}
