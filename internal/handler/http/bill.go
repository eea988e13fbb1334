package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

const defaultRecentBillLimit = 10

type BillHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListRecent(w http.ResponseWriter, r *http.Request)
}

type billHandlerImpl struct {
	billService bill.BillService
}

func NewBillHandler(billService bill.BillService) BillHandler {
	return &billHandlerImpl{billService: billService}
}

// Record implements BillHandler.
func (h *billHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req bill.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecorderID = callerID(r)

	result, err := h.billService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Bill recorded"
	if result.Warning != nil {
		message = *result.Warning
	}
	response.Created(w, message, result)
}

// ListAll implements BillHandler.
func (h *billHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.billService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListRecent implements BillHandler. Returns the caller's most recently
// recorded bills.
func (h *billHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentBillLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	resp, err := h.billService.ListRecentByRecorder(r.Context(), callerID(r), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
