package leave

import "time"

// LeaveType enumerates the per-type annual balances. Unpaid leave is
// unlimited and never debited.
type LeaveType string

const (
	LeaveTypeCasual  LeaveType = "casual"
	LeaveTypeMedical LeaveType = "medical"
	LeaveTypeEarned  LeaveType = "earned"
	LeaveTypeUnpaid  LeaveType = "unpaid"
)

// LeaveTypes lists all known leave types in display order.
var LeaveTypes = []LeaveType{LeaveTypeCasual, LeaveTypeMedical, LeaveTypeEarned, LeaveTypeUnpaid}

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeCasual, LeaveTypeMedical, LeaveTypeEarned, LeaveTypeUnpaid:
		return true
	}
	return false
}

// HasBalance reports whether the type draws from a finite balance.
func (t LeaveType) HasBalance() bool {
	return t != LeaveTypeUnpaid
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays int

	Reason string

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	AppliedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
	ApproverName *string
}

// Balances holds the remaining days per finite leave type for one employee.
type Balances struct {
	Casual  int
	Medical int
	Earned  int
	Unpaid  int
}

// DefaultBalances are the opening balances seeded at registration.
func DefaultBalances() Balances {
	return Balances{Casual: 12, Medical: 12, Earned: 15, Unpaid: 0}
}

func (b Balances) Days(t LeaveType) int {
	switch t {
	case LeaveTypeCasual:
		return b.Casual
	case LeaveTypeMedical:
		return b.Medical
	case LeaveTypeEarned:
		return b.Earned
	default:
		return b.Unpaid
	}
}

// NumberOfDays returns the inclusive calendar-day span between start and
// end. Both endpoints count, so a single-day request yields 1. Callers must
// validate start <= end first; the absolute difference matches how the
// count has always been computed here.
func NumberOfDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int((diff + 24*time.Hour - 1) / (24 * time.Hour))
	return days + 1
}

// ValidateDateRange enforces the creation-time date invariants: the range
// must be ordered and must not start before today (calendar-date
// granularity).
func ValidateDateRange(start, end, today time.Time) error {
	if start.After(end) {
		return ErrInvalidDateRange
	}
	if start.Before(truncateToDay(today)) {
		return ErrPastDateNotAllowed
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overlaps reports whether two inclusive date ranges share at least one
// calendar day. Touching endpoints count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
