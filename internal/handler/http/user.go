package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
	employeeService "github.com/leavetrack/leavetrack-backend-go/internal/service/employee"
)

type UserHandler interface {
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	employees *employeeService.Service
}

func NewUserHandler(employees *employeeService.Service) UserHandler {
	return &UserHandlerImpl{employees: employees}
}

func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = employeeID

	updated, err := h.employees.UpdateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", updated)
}
