package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// callerID returns the employee id of the authenticated caller, or "" when
// the request carries no usable token.
func callerID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["employee_id"].(string)
	return id
}
