package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
)

// employeeIDFromContext pulls the authenticated employee out of the
// verified JWT claims.
func employeeIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["employee_id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// idParam extracts a UUID route parameter, writing a 400 itself when the
// value is malformed.
func idParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if uuid.Validate(id) != nil {
		response.BadRequest(w, "Invalid identifier", nil)
		return "", false
	}
	return id, true
}
