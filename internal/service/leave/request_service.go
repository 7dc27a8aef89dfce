package leave

import (
	"context"
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

// RequestService drives the leave request lifecycle: create, approve,
// reject, cancel. Every mutation runs inside a transaction that first locks
// the request owner's employee row, which serializes concurrent lifecycle
// operations per employee.
type RequestService struct {
	tx        database.Transactor
	employees employee.EmployeeRepository
	requests  leave.LeaveRequestRepository
	balances  leave.BalanceRepository

	// now is swappable in tests.
	now func() time.Time
}

func NewRequestService(
	tx database.Transactor,
	employees employee.EmployeeRepository,
	requests leave.LeaveRequestRepository,
	balances leave.BalanceRepository,
) *RequestService {
	return &RequestService{
		tx:        tx,
		employees: employees,
		requests:  requests,
		balances:  balances,
		now:       time.Now,
	}
}

// Create validates and files a new leave request. The balance is checked
// here but not debited; the debit happens at approval.
func (s *RequestService) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType := leave.LeaveType(req.LeaveType)
	if !leaveType.IsValid() {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidLeaveType
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	if err := leave.ValidateDateRange(start, end, s.now().UTC()); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	days := leave.NumberOfDays(start, end)

	var created leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employees.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive {
			return employee.ErrEmployeeDeactivated
		}

		if leaveType.HasBalance() {
			balances, err := s.balances.GetByEmployee(ctx, emp.ID)
			if err != nil {
				return err
			}
			if balances.Days(leaveType) < days {
				return leave.ErrInsufficientBalance
			}
		}

		overlapping, err := s.requests.HasOverlapping(ctx, emp.ID, start, end)
		if err != nil {
			return err
		}
		if overlapping {
			return leave.ErrOverlappingRequest
		}

		created, err = s.requests.Create(ctx, leave.LeaveRequest{
			EmployeeID:   emp.ID,
			Type:         leaveType,
			StartDate:    start,
			EndDate:      end,
			NumberOfDays: days,
			Reason:       req.Reason,
			Status:       leave.StatusPending,
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Approve transitions a pending request to approved and debits the owner's
// balance. Unpaid leave carries no balance and is never debited.
func (s *RequestService) Approve(ctx context.Context, requestID, actorID string) (leave.LeaveRequestResponse, error) {
	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		// Lock the owner, then re-read the request under the lock.
		if _, err := s.employees.GetByIDForUpdate(ctx, req.EmployeeID); err != nil {
			return err
		}
		req, err = s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if req.Status != leave.StatusPending {
			return leave.ErrRequestNotPending
		}

		if err := s.authorizeActor(ctx, actorID, req.EmployeeID); err != nil {
			return err
		}

		if req.Type.HasBalance() {
			if err := s.balances.Debit(ctx, req.EmployeeID, req.Type, req.NumberOfDays); err != nil {
				return err
			}
		}

		status := leave.StatusApproved
		approvedAt := s.now()
		err = s.requests.Update(ctx, leave.UpdateLeaveRequestRequest{
			ID:         req.ID,
			Status:     &status,
			ApprovedBy: &actorID,
			ApprovedAt: &approvedAt,
		})
		if err != nil {
			return err
		}

		updated, err = s.requests.GetByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// Reject transitions a pending request to rejected, stamping the actor and
// when they acted. No balance movement.
func (s *RequestService) Reject(ctx context.Context, req leave.RejectRequestRequest) (leave.LeaveRequestResponse, error) {
	reason := req.Reason
	if reason == "" {
		reason = "No reason provided"
	}

	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		lr, err := s.requests.GetByID(ctx, req.RequestID)
		if err != nil {
			return err
		}

		if _, err := s.employees.GetByIDForUpdate(ctx, lr.EmployeeID); err != nil {
			return err
		}
		lr, err = s.requests.GetByID(ctx, req.RequestID)
		if err != nil {
			return err
		}

		if lr.Status != leave.StatusPending {
			return leave.ErrRequestNotPending
		}

		if err := s.authorizeActor(ctx, req.ActorID, lr.EmployeeID); err != nil {
			return err
		}

		status := leave.StatusRejected
		rejectedAt := s.now()
		err = s.requests.Update(ctx, leave.UpdateLeaveRequestRequest{
			ID:              lr.ID,
			Status:          &status,
			ApprovedBy:      &req.ActorID,
			ApprovedAt:      &rejectedAt,
			RejectionReason: &reason,
		})
		if err != nil {
			return err
		}

		updated, err = s.requests.GetByID(ctx, lr.ID)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// Cancel lets the request owner withdraw a pending or approved request. A
// cancelled approved request refunds the debited days, unless the leave was
// unpaid.
func (s *RequestService) Cancel(ctx context.Context, requestID, employeeID string) (leave.LeaveRequestResponse, error) {
	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.EmployeeID != employeeID {
			return leave.ErrNotRequestOwner
		}

		if _, err := s.employees.GetByIDForUpdate(ctx, req.EmployeeID); err != nil {
			return err
		}
		req, err = s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if req.Status != leave.StatusPending && req.Status != leave.StatusApproved {
			return leave.ErrCannotCancel
		}

		if req.Status == leave.StatusApproved && req.Type.HasBalance() {
			if err := s.balances.Credit(ctx, req.EmployeeID, req.Type, req.NumberOfDays); err != nil {
				return err
			}
		}

		status := leave.StatusCancelled
		err = s.requests.Update(ctx, leave.UpdateLeaveRequestRequest{
			ID:     req.ID,
			Status: &status,
		})
		if err != nil {
			return err
		}

		updated, err = s.requests.GetByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

func (s *RequestService) authorizeActor(ctx context.Context, actorID, subjectID string) error {
	actor, err := s.employees.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	subject, err := s.employees.GetByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if !leave.CanActOn(actor, subject) {
		return leave.ErrNotAuthorized
	}
	return nil
}
