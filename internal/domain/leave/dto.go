package leave

import (
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	} else if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason must be at most 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	RequestID string `json:"-"`
	ActorID   string `json:"-"`
	Reason    string `json:"reason"`
}

type UpdateBalanceRequest struct {
	ActorID    string `json:"-"`
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	Balance    int    `json:"balance"`
}

func (r UpdateBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Leave type must be casual, medical, earned or unpaid"})
	}
	if r.Balance < 0 {
		errs = append(errs, validator.ValidationError{Field: "balance", Message: "Balance cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResetBalancesRequest carries the new opening balances for the yearly
// administrative reset. Omitted fields fall back to the defaults.
type ResetBalancesRequest struct {
	Casual  *int `json:"casual"`
	Medical *int `json:"medical"`
	Earned  *int `json:"earned"`
}

func (r ResetBalancesRequest) Resolved() (casual, medical, earned int) {
	defaults := DefaultBalances()
	casual, medical, earned = defaults.Casual, defaults.Medical, defaults.Earned
	if r.Casual != nil {
		casual = *r.Casual
	}
	if r.Medical != nil {
		medical = *r.Medical
	}
	if r.Earned != nil {
		earned = *r.Earned
	}
	return casual, medical, earned
}

func (r ResetBalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*int{"casual": r.Casual, "medical": r.Medical, "earned": r.Earned} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "Balance cannot be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequestFilter narrows history listings; zero values mean no filtering.
type RequestFilter struct {
	Status *Status
	Year   *int
}

func (f RequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateLeaveRequestRequest is a partial update; nil fields are untouched.
type UpdateLeaveRequestRequest struct {
	ID              string
	Status          *Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
}

type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	LeaveType       LeaveType  `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	NumberOfDays    int        `json:"number_of_days"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApproverName    *string    `json:"approver_name,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	AppliedAt       time.Time  `json:"applied_at"`
}

func ToResponse(req LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		EmployeeName:    req.EmployeeName,
		LeaveType:       req.Type,
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		NumberOfDays:    req.NumberOfDays,
		Reason:          req.Reason,
		Status:          req.Status,
		ApprovedBy:      req.ApprovedBy,
		ApproverName:    req.ApproverName,
		ApprovedAt:      req.ApprovedAt,
		RejectionReason: req.RejectionReason,
		AppliedAt:       req.AppliedAt,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, ToResponse(req))
	}
	return out
}

type BalancesResponse struct {
	Casual  int `json:"casual"`
	Medical int `json:"medical"`
	Earned  int `json:"earned"`
	Unpaid  int `json:"unpaid"`
}

func ToBalancesResponse(b Balances) BalancesResponse {
	return BalancesResponse{Casual: b.Casual, Medical: b.Medical, Earned: b.Earned, Unpaid: b.Unpaid}
}
