package auth

import (
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmployeeCode string `json:"employee_code"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "First name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "Last name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Valid email is required"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Employee code must look like EMP-1024"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Valid email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse carries the session tokens issued at registration and
// login. The refresh token travels in an HttpOnly cookie, not the body.
type TokenResponse struct {
	AccessToken           string                    `json:"access_token"`
	ExpiresAt             int64                     `json:"expires_at"`
	RefreshToken          string                    `json:"-"`
	RefreshTokenExpiresAt int64                     `json:"-"`
	Employee              employee.EmployeeResponse `json:"employee"`
}
