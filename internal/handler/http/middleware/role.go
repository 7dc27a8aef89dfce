package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
)

// RequireManager admits team leaders, team managers and general managers.
// Scope checks beyond the role happen in the services.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || !role.IsManagerial() {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireGeneralManager guards the administrative endpoints.
func RequireGeneralManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != employee.RoleGeneralManager {
			response.Forbidden(w, "General manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func roleFromClaims(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.Role(roleStr), true
}
