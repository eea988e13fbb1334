package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/attendance"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SweepAll(w http.ResponseWriter, r *http.Request)
	SweepEmployee(w http.ResponseWriter, r *http.Request)
	ResetMonthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// SweepAll implements AttendanceHandler. Applies one day of attendance to
// every employee; reruns for the same day are no-ops.
func (h *attendanceHandlerImpl) SweepAll(w http.ResponseWriter, r *http.Request) {
	day, ok := sweepDate(w, r)
	if !ok {
		return
	}

	stats, err := h.attendanceService.SweepAll(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// SweepEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) SweepEmployee(w http.ResponseWriter, r *http.Request) {
	day, ok := sweepDate(w, r)
	if !ok {
		return
	}

	outcome, err := h.attendanceService.SweepEmployee(r.Context(), chi.URLParam(r, "id"), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"outcome": outcome,
	})
}

// ResetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) ResetMonthly(w http.ResponseWriter, r *http.Request) {
	day, ok := sweepDate(w, r)
	if !ok {
		return
	}

	count, err := h.attendanceService.ResetMonthlyCounters(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"reset_count": count,
	})
}

func sweepDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return time.Time{}, false
		}
		day = parsed
	}
	return day, true
}
