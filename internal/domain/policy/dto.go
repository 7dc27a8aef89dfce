package policy

import (
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/validator"
)

type CreatePolicyRequest struct {
	Name                string  `json:"name"`
	LeaveType           string  `json:"leave_type"`
	AnnualQuota         int     `json:"annual_quota"`
	MaxConsecutiveDays  *int    `json:"max_consecutive_days"`
	CarryForwardAllowed bool    `json:"carry_forward_allowed"`
	CarryForwardMaxDays int     `json:"carry_forward_max_days"`
	RequiresApproval    *bool   `json:"requires_approval"`
	MinimumNoticeDays   int     `json:"minimum_notice_days"`
	Description         *string `json:"description"`
}

func (r CreatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Policy name is required"})
	}
	if !leave.LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Leave type must be casual, medical, earned or unpaid"})
	}
	if r.AnnualQuota < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_quota", Message: "Annual quota cannot be negative"})
	}
	if r.MinimumNoticeDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "minimum_notice_days", Message: "Minimum notice cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePolicyRequest struct {
	ID                  string  `json:"-"`
	Name                *string `json:"name"`
	AnnualQuota         *int    `json:"annual_quota"`
	MaxConsecutiveDays  *int    `json:"max_consecutive_days"`
	CarryForwardAllowed *bool   `json:"carry_forward_allowed"`
	CarryForwardMaxDays *int    `json:"carry_forward_max_days"`
	RequiresApproval    *bool   `json:"requires_approval"`
	MinimumNoticeDays   *int    `json:"minimum_notice_days"`
	Description         *string `json:"description"`
	IsActive            *bool   `json:"is_active"`
}

func (r UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Policy name cannot be empty"})
	}
	if r.AnnualQuota != nil && *r.AnnualQuota < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_quota", Message: "Annual quota cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	LeaveType           leave.LeaveType `json:"leave_type"`
	AnnualQuota         int             `json:"annual_quota"`
	MaxConsecutiveDays  *int            `json:"max_consecutive_days,omitempty"`
	CarryForwardAllowed bool            `json:"carry_forward_allowed"`
	CarryForwardMaxDays int             `json:"carry_forward_max_days"`
	RequiresApproval    bool            `json:"requires_approval"`
	MinimumNoticeDays   int             `json:"minimum_notice_days"`
	Description         *string         `json:"description,omitempty"`
	IsActive            bool            `json:"is_active"`
}

func ToResponse(p LeavePolicy) PolicyResponse {
	return PolicyResponse{
		ID:                  p.ID,
		Name:                p.Name,
		LeaveType:           p.LeaveType,
		AnnualQuota:         p.AnnualQuota,
		MaxConsecutiveDays:  p.MaxConsecutiveDays,
		CarryForwardAllowed: p.CarryForwardAllowed,
		CarryForwardMaxDays: p.CarryForwardMaxDays,
		RequiresApproval:    p.RequiresApproval,
		MinimumNoticeDays:   p.MinimumNoticeDays,
		Description:         p.Description,
		IsActive:            p.IsActive,
	}
}

func ToResponses(policies []LeavePolicy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, ToResponse(p))
	}
	return out
}
