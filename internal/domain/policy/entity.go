package policy

import (
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

// LeavePolicy is per-type configuration data. The request lifecycle
// validates dates, balance and overlap only; these fields are advisory and
// available to future enforcement.
type LeavePolicy struct {
	ID        string
	Name      string
	LeaveType leave.LeaveType

	AnnualQuota        int
	MaxConsecutiveDays *int

	CarryForwardAllowed bool
	CarryForwardMaxDays int

	RequiresApproval  bool
	MinimumNoticeDays int

	Description *string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
