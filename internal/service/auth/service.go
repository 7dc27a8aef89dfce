package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/auth"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/jwt"
)

type Service struct {
	tx        database.Transactor
	employees employee.EmployeeRepository
	balances  leave.BalanceRepository
	jwt       jwt.Service
}

func NewService(
	tx database.Transactor,
	employees employee.EmployeeRepository,
	balances leave.BalanceRepository,
	jwtService jwt.Service,
) *Service {
	return &Service{
		tx:        tx,
		employees: employees,
		balances:  balances,
		jwt:       jwtService,
	}
}

// Register self-enrolls a team member with default opening balances.
// Managerial accounts are provisioned through the admin endpoints instead.
func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
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
			Role:         employee.RoleTeamMember,
			JoiningDate:  time.Now(),
		})
		if err != nil {
			return err
		}

		return s.balances.Init(ctx, created.ID, leave.DefaultBalances())
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(created)
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.employees.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return auth.TokenResponse{}, employee.ErrEmployeeDeactivated
	}

	return s.issueTokens(emp)
}

// Me resolves the authenticated employee's profile.
func (s *Service) Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) issueTokens(emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		ExpiresAt:             expiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		Employee:              employee.ToResponse(emp),
	}, nil
}
