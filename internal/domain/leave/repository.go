package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, request UpdateLeaveRequestRequest) error
	// HasOverlapping reports whether the employee already holds a pending or
	// approved request whose inclusive date range intersects [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	// ListByEmployee returns the employee's own history, newest applied first.
	ListByEmployee(ctx context.Context, employeeID string, filter RequestFilter) ([]LeaveRequest, error)
	// ListPendingByEmployees returns the pending queue for a set of
	// employees, oldest applied first.
	ListPendingByEmployees(ctx context.Context, employeeIDs []string) ([]LeaveRequest, error)
	// ListApprovedInWindow returns approved requests for the given employees
	// whose ranges intersect [from, to], ordered by start date.
	ListApprovedInWindow(ctx context.Context, employeeIDs []string, from, to time.Time) ([]LeaveRequest, error)
	// ListByEmployeesAndYear returns all requests starting in the given year
	// for the given employees, newest applied first.
	ListByEmployeesAndYear(ctx context.Context, employeeIDs []string, year int) ([]LeaveRequest, error)
	// ListByYear returns every request starting in the given year.
	ListByYear(ctx context.Context, year int) ([]LeaveRequest, error)
}

// BalanceRepository - interface for the leave_balances table. Debit is the
// one operation the service relies on being atomic: the decrement and the
// sufficient-balance check happen in a single statement.
type BalanceRepository interface {
	Init(ctx context.Context, employeeID string, balances Balances) error
	GetByEmployee(ctx context.Context, employeeID string) (Balances, error)
	// Debit subtracts days from the employee's balance of the given type,
	// failing with ErrInsufficientBalance when fewer than days remain.
	Debit(ctx context.Context, employeeID string, t LeaveType, days int) error
	// Credit adds days back; used when an approved request is cancelled.
	Credit(ctx context.Context, employeeID string, t LeaveType, days int) error
	Set(ctx context.Context, employeeID string, t LeaveType, days int) error
	// ResetAllActive overwrites the casual/medical/earned balances of every
	// active employee in one batch statement and returns the number of
	// employees touched.
	ResetAllActive(ctx context.Context, casual, medical, earned int) (int64, error)
}
