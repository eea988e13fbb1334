package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

// Request implements AdvanceHandler.
func (h *advanceHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req advance.RequestAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = callerID(r)
	}

	resp, err := h.advanceService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance requested", resp)
}

// Decide implements AdvanceHandler.
func (h *advanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req advance.DecideAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = callerID(r)

	resp, err := h.advanceService.Decide(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements AdvanceHandler.
func (h *advanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.advanceService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPending implements AdvanceHandler.
func (h *advanceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.advanceService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListAll implements AdvanceHandler.
func (h *advanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.advanceService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByEmployee implements AdvanceHandler.
func (h *advanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	resp, err := h.advanceService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
