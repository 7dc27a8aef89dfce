package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/auth"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

type passTransactor struct{}

func (passTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	byEmail map[string]employee.Employee
}

func (r *stubEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubEmployeeRepo) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "emp-1"
	emp.IsActive = true
	r.byEmail[emp.Email] = emp
	return emp, nil
}

func (r *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := r.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type stubBalanceRepo struct {
	leave.BalanceRepository
	seeded map[string]leave.Balances
}

func (r *stubBalanceRepo) Init(ctx context.Context, employeeID string, balances leave.Balances) error {
	r.seeded[employeeID] = balances
	return nil
}

type stubJWTService struct{}

func (stubJWTService) GenerateAccessToken(employeeID string, email string, role employee.Role) (string, int64, error) {
	return "access-" + employeeID, 1000, nil
}

func (stubJWTService) GenerateRefreshToken(employeeID string) (string, int64, error) {
	return "refresh-" + employeeID, 2000, nil
}

func (stubJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func (stubJWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{Name: "refresh_token", Value: token}
}

func newTestService() (*Service, *stubEmployeeRepo, *stubBalanceRepo) {
	employees := &stubEmployeeRepo{byEmail: make(map[string]employee.Employee)}
	balances := &stubBalanceRepo{seeded: make(map[string]leave.Balances)}
	svc := NewService(passTransactor{}, employees, balances, stubJWTService{})
	return svc, employees, balances
}

func TestRegister(t *testing.T) {
	t.Run("enrolls a team member with defaults and a full token pair", func(t *testing.T) {
		svc, _, balances := newTestService()

		tokens, err := svc.Register(context.Background(), auth.RegisterRequest{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "Ada@Example.com",
			Password:     "secret1",
			EmployeeCode: "EMP-1024",
		})
		require.NoError(t, err)

		assert.Equal(t, "access-emp-1", tokens.AccessToken)
		assert.Equal(t, "refresh-emp-1", tokens.RefreshToken)
		assert.Equal(t, int64(2000), tokens.RefreshTokenExpiresAt)
		assert.Equal(t, employee.RoleTeamMember, tokens.Employee.Role)
		assert.Equal(t, "ada@example.com", tokens.Employee.Email)
		assert.Equal(t, leave.DefaultBalances(), balances.seeded["emp-1"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, employees, _ := newTestService()
		employees.byEmail["ada@example.com"] = employee.Employee{ID: "taken", Email: "ada@example.com"}

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "ada@example.com",
			Password:     "secret1",
			EmployeeCode: "EMP-1024",
		})
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})
}

func TestLogin(t *testing.T) {
	seed := func(t *testing.T, employees *stubEmployeeRepo, active bool) {
		t.Helper()
		hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
		require.NoError(t, err)
		employees.byEmail["ada@example.com"] = employee.Employee{
			ID:           "emp-1",
			Email:        "ada@example.com",
			PasswordHash: string(hash),
			Role:         employee.RoleTeamMember,
			IsActive:     active,
		}
	}

	t.Run("issues access and refresh tokens", func(t *testing.T) {
		svc, employees, _ := newTestService()
		seed(t, employees, true)

		tokens, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ada@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "access-emp-1", tokens.AccessToken)
		assert.Equal(t, "refresh-emp-1", tokens.RefreshToken)
		assert.NotZero(t, tokens.RefreshTokenExpiresAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, employees, _ := newTestService()
		seed(t, employees, true)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ada@example.com", Password: "nope123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, employees, _ := newTestService()
		seed(t, employees, false)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ada@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, employee.ErrEmployeeDeactivated)
	})
}
