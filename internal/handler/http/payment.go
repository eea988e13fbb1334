package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

// Record implements PaymentHandler.
func (h *paymentHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req payment.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = callerID(r)

	resp, err := h.paymentService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary payment recorded", resp)
}

// ListAll implements PaymentHandler.
func (h *paymentHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.paymentService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByEmployee implements PaymentHandler.
func (h *paymentHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	resp, err := h.paymentService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
