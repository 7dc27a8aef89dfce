package leave

import (
	"context"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

// BalanceService covers balance reads and the administrative writes that
// bypass the request lifecycle.
type BalanceService struct {
	employees employee.EmployeeRepository
	balances  leave.BalanceRepository
}

func NewBalanceService(employees employee.EmployeeRepository, balances leave.BalanceRepository) *BalanceService {
	return &BalanceService{employees: employees, balances: balances}
}

func (s *BalanceService) MyBalances(ctx context.Context, employeeID string) (leave.BalancesResponse, error) {
	balances, err := s.balances.GetByEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalancesResponse{}, err
	}
	return leave.ToBalancesResponse(balances), nil
}

// EmployeeBalances returns another employee's balances; the actor must have
// authority over them.
func (s *BalanceService) EmployeeBalances(ctx context.Context, actorID, employeeID string) (leave.BalancesResponse, error) {
	if employeeID != actorID {
		if err := s.authorize(ctx, actorID, employeeID); err != nil {
			return leave.BalancesResponse{}, err
		}
	}

	balances, err := s.balances.GetByEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalancesResponse{}, err
	}
	return leave.ToBalancesResponse(balances), nil
}

// UpdateBalance sets one leave-type balance to an absolute value. Manager
// scope rules apply.
func (s *BalanceService) UpdateBalance(ctx context.Context, req leave.UpdateBalanceRequest) (leave.BalancesResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalancesResponse{}, err
	}

	if err := s.authorize(ctx, req.ActorID, req.EmployeeID); err != nil {
		return leave.BalancesResponse{}, err
	}

	if err := s.balances.Set(ctx, req.EmployeeID, leave.LeaveType(req.LeaveType), req.Balance); err != nil {
		return leave.BalancesResponse{}, err
	}

	balances, err := s.balances.GetByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return leave.BalancesResponse{}, err
	}
	return leave.ToBalancesResponse(balances), nil
}

// ResetAllBalances is the yearly batch reset over every active employee.
// Unpaid balances are left alone.
func (s *BalanceService) ResetAllBalances(ctx context.Context, req leave.ResetBalancesRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	casual, medical, earned := req.Resolved()
	return s.balances.ResetAllActive(ctx, casual, medical, earned)
}

func (s *BalanceService) authorize(ctx context.Context, actorID, subjectID string) error {
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
