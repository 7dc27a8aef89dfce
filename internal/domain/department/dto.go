package department

import (
	"strings"

	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	ManagerID   *string `json:"manager_id"`
	Description *string `json:"description"`
}

func (r CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Department name is required"})
	}
	if !validator.IsValidDepartmentCode(strings.ToUpper(r.Code)) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "Department code must be 2-10 letters or digits"})
	}
	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "Description must be at most 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	ManagerID   *string `json:"manager_id"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Department name cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		ManagerID:   d.ManagerID,
		ManagerName: d.ManagerName,
		Description: d.Description,
		IsActive:    d.IsActive,
	}
}

func ToResponses(departments []Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, ToResponse(d))
	}
	return out
}
