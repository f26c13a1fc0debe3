package http

import (
	"net/http"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

type EmployeesHandler struct {
	EmployeeService *service.EmployeeService

	// ReadRoles may view any employee record. Everyone else only sees
	// their own.
	ReadRoles httpx.RoleSet
}

// HandleList godoc
//
//	@Summary	List employees
//	@Tags		Employees
//	@Security	BearerAuth
//	@Produce	json
//	@Param		department	query		string	false	"Department"
//	@Param		role		query		string	false	"Role"	Enums(admin, hr, employee)
//	@Param		status		query		string	false	"Status"	Enums(active, inactive)
//	@Success	200			{array}		hrmsapi.Employee
//	@Failure	400			{object}	httpx.ErrorBody
//	@Failure	401			{object}	httpx.ErrorBody
//	@Failure	403			{object}	httpx.ErrorBody
//	@Router		/api/employees [get].
func (h *EmployeesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.EmployeeService.List(r.Context(), store.EmployeeFilter{
		Department: q.Get("department"),
		Role:       q.Get("role"),
		Status:     domain.EmployeeStatus(q.Get("status")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, mapSlice(list, toEmployee))
}

// HandleGet godoc
//
//	@Summary		Get an employee
//	@Description	Staff may read any record; other roles only their own.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Employee ID"
//	@Success		200	{object}	hrmsapi.Employee
//	@Failure		403	{object}	httpx.ErrorBody
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/api/employees/{id} [get].
func (h *EmployeesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	actor := actorFrom(r)
	if id != actor.ID && !h.ReadRoles.Allows(actor.Role) {
		httpx.WriteError(w, http.StatusForbidden, msgForbidden)
		return
	}

	e, err := h.EmployeeService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toEmployee(e))
}

// HandleCreate godoc
//
//	@Summary	Create an employee
//	@Tags		Employees
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		hrmsapi.CreateEmployeeRequest	true	"New employee"
//	@Success	201		{object}	hrmsapi.Employee
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	403		{object}	httpx.ErrorBody
//	@Failure	409		{object}	httpx.ErrorBody	"Email already in use"
//	@Router		/api/employees [post].
func (h *EmployeesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.CreateEmployeeRequest
	if !decode(w, r, &req) {
		return
	}

	e, err := h.EmployeeService.Create(r.Context(), actorFrom(r), service.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		Salary:     req.Salary,
		JoinedAt:   req.JoinedAt,
		Status:     domain.EmployeeStatus(req.Status),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, toEmployee(e))
}

// HandleUpdate godoc
//
//	@Summary		Update an employee
//	@Description	Only the fields present in the body change. Only an admin may grant or touch the admin role.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Employee ID"
//	@Param			request	body		hrmsapi.UpdateEmployeeRequest	true	"Changes"
//	@Success		200		{object}	hrmsapi.Employee
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		409		{object}	httpx.ErrorBody
//	@Router			/api/employees/{id} [put].
func (h *EmployeesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.UpdateEmployeeRequest
	if !decode(w, r, &req) {
		return
	}

	in := service.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		Salary:     req.Salary,
		JoinedAt:   req.JoinedAt,
	}
	if req.Status != nil {
		st := domain.EmployeeStatus(*req.Status)
		in.Status = &st
	}

	e, err := h.EmployeeService.Update(r.Context(), actorFrom(r), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toEmployee(e))
}

// HandleDelete godoc
//
//	@Summary		Delete an employee
//	@Description	Removes the employee with their attendance, payslips and appraisals. Deleting yourself is rejected.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Employee ID"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorBody
//	@Failure		403	{object}	httpx.ErrorBody
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/api/employees/{id} [delete].
func (h *EmployeesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EmployeeService.Delete(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
