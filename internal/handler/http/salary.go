package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/salary"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	SummaryAll(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Rollover(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// Summary implements SalaryHandler.
func (h *salaryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.salaryService.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SummaryAll implements SalaryHandler.
func (h *salaryHandlerImpl) SummaryAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.salaryService.SummaryAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Refresh implements SalaryHandler. Recomputes the employee's used salary
// from bills and approved advances and stores it.
func (h *salaryHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	used, err := h.salaryService.RefreshUsedSalary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Used salary refreshed", map[string]interface{}{
		"used_salary": used,
	})
}

// Rollover implements SalaryHandler. Accepts an optional date query parameter
// (YYYY-MM-DD) for replaying a missed month boundary.
func (h *salaryHandlerImpl) Rollover(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		day = parsed
	}

	stats, err := h.salaryService.RolloverMonthly(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
