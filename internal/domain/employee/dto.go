package employee

import (
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	EmployeeCode string  `json:"employee_code"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"department_id"`
	ManagerID    *string `json:"manager_id"`

	// Optional explicit opening balances; defaults apply when nil.
	Balances *BalancesPayload `json:"balances"`
}

type BalancesPayload struct {
	Casual  int `json:"casual"`
	Medical int `json:"medical"`
	Earned  int `json:"earned"`
	Unpaid  int `json:"unpaid"`
}

func (r CreateEmployeeRequest) Validate() error {
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
	if r.Role != "" && !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Role         *string `json:"role"`
	DepartmentID *string `json:"department_id"`
	ManagerID    *string `json:"manager_id"`
	IsActive     *bool   `json:"is_active"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Valid email is required"})
	}
	if r.Role != nil && !Role(*r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Valid email is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeCode   string    `json:"employee_code"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	DepartmentID   *string   `json:"department_id,omitempty"`
	DepartmentName *string   `json:"department_name,omitempty"`
	ManagerID      *string   `json:"manager_id,omitempty"`
	ManagerName    *string   `json:"manager_name,omitempty"`
	JoiningDate    time.Time `json:"joining_date"`
	IsActive       bool      `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Role:           e.Role,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		ManagerID:      e.ManagerID,
		ManagerName:    e.ManagerName,
		JoiningDate:    e.JoiningDate,
		IsActive:       e.IsActive,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
