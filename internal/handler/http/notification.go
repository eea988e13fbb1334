package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

// ListAll implements NotificationHandler.
func (h *notificationHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.notificationService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByEmployee implements NotificationHandler.
func (h *notificationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	resp, err := h.notificationService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
