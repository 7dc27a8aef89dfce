package response

import (
	"errors"
	"net/http"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/auth"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/department"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/policy"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeDeactivated):
		Forbidden(w, "Employee account is deactivated")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrPastDateNotAllowed):
		BadRequest(w, "Leave cannot start in the past", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrRequestNotPending):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrCannotCancel):
		Conflict(w, "Leave request can no longer be cancelled")
	case errors.Is(err, leave.ErrNotAuthorized):
		Forbidden(w, "Not authorized to act on this employee")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the request owner can cancel it")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department name or code already exists")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Leave policy not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
