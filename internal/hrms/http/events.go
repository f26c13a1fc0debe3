package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

const (
	msgBadStart = "start must be an RFC 3339 time or YYYY-MM-DD"
	msgBadEnd   = "end must be an RFC 3339 time or YYYY-MM-DD"
)

type EventsHandler struct {
	EventService *service.EventService
}

// parseInstant accepts RFC 3339 or a bare date, which the calendar widget
// sends for all day ranges.
func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// HandleList godoc
//
//	@Summary		List events
//	@Description	Events overlapping [start, end]. Either bound may be omitted.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			start	query		string	false	"RFC 3339 time or YYYY-MM-DD"
//	@Param			end		query		string	false	"RFC 3339 time or YYYY-MM-DD"
//	@Success		200		{array}		hrmsapi.Event
//	@Failure		400		{object}	httpx.ErrorBody
//	@Router			/api/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end, ok := parseRange(w, q.Get("start"), q.Get("end"))
	if !ok {
		return
	}

	list, err := h.EventService.List(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, mapSlice(list, toEvent))
}

// parseRange parses both bounds, writing a 400 for the first bad one.
func parseRange(w http.ResponseWriter, rawStart, rawEnd string) (time.Time, time.Time, bool) {
	start, ok := parseInstant(rawStart)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, msgBadStart)
		return time.Time{}, time.Time{}, false
	}
	end, ok := parseInstant(rawEnd)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, msgBadEnd)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func eventInput(w http.ResponseWriter, req hrmsapi.EventRequest) (service.EventInput, bool) {
	start, end, ok := parseRange(w, req.Start, req.End)
	if !ok {
		return service.EventInput{}, false
	}
	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         end,
		AllDay:      req.AllDay,
		Color:       req.Color,
	}, true
}

// HandleCreate godoc
//
//	@Summary	Create an event
//	@Tags		Events
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		hrmsapi.EventRequest	true	"Event"
//	@Success	201		{object}	hrmsapi.Event
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	403		{object}	httpx.ErrorBody
//	@Router		/api/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.EventRequest
	if !decode(w, r, &req) {
		return
	}

	in, ok := eventInput(w, req)
	if !ok {
		return
	}

	e, err := h.EventService.Create(r.Context(), actorFrom(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, toEvent(e))
}

// HandleUpdate godoc
//
//	@Summary	Replace an event
//	@Tags		Events
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Event ID"
//	@Param		request	body		hrmsapi.EventRequest	true	"Event"
//	@Success	200		{object}	hrmsapi.Event
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/api/events/{id} [put].
func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hrmsapi.EventRequest
	if !decode(w, r, &req) {
		return
	}

	in, ok := eventInput(w, req)
	if !ok {
		return
	}

	e, err := h.EventService.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toEvent(e))
}

// HandleDelete godoc
//
//	@Summary	Delete an event
//	@Tags		Events
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Event ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/api/events/{id} [delete].
func (h *EventsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EventService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
