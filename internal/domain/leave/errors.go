package leave

import "errors"

var (
	// Validation
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrPastDateNotAllowed = errors.New("cannot apply for past dates")
	ErrInvalidLeaveType   = errors.New("invalid leave type")

	// Business rules
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrOverlappingRequest  = errors.New("overlapping leave request exists")
	ErrRequestNotPending   = errors.New("leave request is not pending")
	ErrCannotCancel        = errors.New("leave request can no longer be cancelled")

	// Authorization
	ErrNotAuthorized   = errors.New("not authorized to act on this leave request")
	ErrNotRequestOwner = errors.New("leave request belongs to another employee")

	// Not found
	ErrRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound = errors.New("leave balance not found")
)
