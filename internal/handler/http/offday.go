package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

type OffDayHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type offDayHandlerImpl struct {
	offDayService offday.OffDayService
}

func NewOffDayHandler(offDayService offday.OffDayService) OffDayHandler {
	return &offDayHandlerImpl{offDayService: offDayService}
}

// Request implements OffDayHandler.
func (h *offDayHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req offday.RequestOffDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = callerID(r)
	}

	resp, err := h.offDayService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Off day requested", resp)
}

// Decide implements OffDayHandler.
func (h *offDayHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req offday.DecideOffDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = callerID(r)

	resp, err := h.offDayService.Decide(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListAll implements OffDayHandler.
func (h *offDayHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.offDayService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByEmployee implements OffDayHandler.
func (h *offDayHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	resp, err := h.offDayService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
