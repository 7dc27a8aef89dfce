package employee

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

// Service covers administrative employee management plus self-service
// profile updates.
type Service struct {
	tx        database.Transactor
	employees employee.EmployeeRepository
	balances  leave.BalanceRepository
}

func NewService(
	tx database.Transactor,
	employees employee.EmployeeRepository,
	balances leave.BalanceRepository,
) *Service {
	return &Service{tx: tx, employees: employees, balances: balances}
}

// Create provisions an employee with any role. Opening balances come from
// the request when given, defaults otherwise.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := employee.RoleTeamMember
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	balances := leave.DefaultBalances()
	if req.Balances != nil {
		balances = leave.Balances{
			Casual:  req.Balances.Casual,
			Medical: req.Balances.Medical,
			Earned:  req.Balances.Earned,
			Unpaid:  req.Balances.Unpaid,
		}
	}

	var created employee.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.employees.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmailExists
		}

		exists, err = s.employees.ExistsByEmployeeCode(ctx, req.EmployeeCode)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmployeeCodeExists
		}

		created, err = s.employees.Create(ctx, employee.Employee{
			EmployeeCode: req.EmployeeCode,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			DepartmentID: req.DepartmentID,
			ManagerID:    req.ManagerID,
			JoiningDate:  time.Now(),
		})
		if err != nil {
			return err
		}

		return s.balances.Init(ctx, created.ID, balances)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(employees), nil
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email
	}

	var updated employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.employees.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Email != nil && *req.Email != current.Email {
			exists, err := s.employees.ExistsByEmail(ctx, *req.Email)
			if err != nil {
				return err
			}
			if exists {
				return employee.ErrEmailExists
			}
		}

		if err := s.employees.Update(ctx, req); err != nil {
			return err
		}

		updated, err = s.employees.GetByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Deactivate soft-deletes the employee; the record and its leave history
// stay queryable.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.employees.Deactivate(ctx, id)
}

// UpdateProfile is the self-service subset of Update.
func (s *Service) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Update(ctx, employee.UpdateEmployeeRequest{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
}
