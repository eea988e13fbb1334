package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrAdminOnly)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || employee.Role(role) != employee.RoleAdmin {
			response.HandleError(w, employee.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin requires the manager or admin role
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, bill.ErrManagerOrAdminOnly)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !employee.Role(roleStr).CanRecordBills() {
			response.HandleError(w, bill.ErrManagerOrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
