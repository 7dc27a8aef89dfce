package postgresql

import (
	"context"
	"fmt"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// Init seeds one balance row per leave type for a new employee.
func (r *balanceRepositoryImpl) Init(ctx context.Context, employeeID string, balances leave.Balances) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, leave_type, balance_days, created_at, updated_at)
		VALUES
			(gen_random_uuid(), $1, 'casual', $2, NOW(), NOW()),
			(gen_random_uuid(), $1, 'medical', $3, NOW(), NOW()),
			(gen_random_uuid(), $1, 'earned', $4, NOW(), NOW()),
			(gen_random_uuid(), $1, 'unpaid', $5, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query,
		employeeID, balances.Casual, balances.Medical, balances.Earned, balances.Unpaid)
	if err != nil {
		return fmt.Errorf("failed to seed leave balances for employee %s: %w", employeeID, err)
	}
	return nil
}

func (r *balanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (leave.Balances, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, balance_days
		FROM leave_balances
		WHERE employee_id = $1
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return leave.Balances{}, err
	}
	defer rows.Close()

	var balances leave.Balances
	found := false
	for rows.Next() {
		var leaveType leave.LeaveType
		var days int
		if err := rows.Scan(&leaveType, &days); err != nil {
			return leave.Balances{}, err
		}
		found = true
		switch leaveType {
		case leave.LeaveTypeCasual:
			balances.Casual = days
		case leave.LeaveTypeMedical:
			balances.Medical = days
		case leave.LeaveTypeEarned:
			balances.Earned = days
		case leave.LeaveTypeUnpaid:
			balances.Unpaid = days
		}
	}
	if err := rows.Err(); err != nil {
		return leave.Balances{}, err
	}
	if !found {
		return leave.Balances{}, leave.ErrBalanceNotFound
	}

	return balances, nil
}

// Debit subtracts days conditionally: the UPDATE matches only when the
// remaining balance covers the debit, so a zero row count means
// insufficient balance without a separate read.
func (r *balanceRepositoryImpl) Debit(ctx context.Context, employeeID string, leaveType leave.LeaveType, days int) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET balance_days = balance_days - $3, updated_at = NOW()
		WHERE employee_id = $1
		AND leave_type = $2
		AND balance_days >= $3
	`

	tag, err := q.Exec(ctx, query, employeeID, leaveType, days)
	if err != nil {
		return fmt.Errorf("failed to debit %s balance for employee %s: %w", leaveType, employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}
	return nil
}

func (r *balanceRepositoryImpl) Credit(ctx context.Context, employeeID string, leaveType leave.LeaveType, days int) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET balance_days = balance_days + $3, updated_at = NOW()
		WHERE employee_id = $1
		AND leave_type = $2
	`

	tag, err := q.Exec(ctx, query, employeeID, leaveType, days)
	if err != nil {
		return fmt.Errorf("failed to credit %s balance for employee %s: %w", leaveType, employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

func (r *balanceRepositoryImpl) Set(ctx context.Context, employeeID string, leaveType leave.LeaveType, days int) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET balance_days = $3, updated_at = NOW()
		WHERE employee_id = $1
		AND leave_type = $2
	`

	tag, err := q.Exec(ctx, query, employeeID, leaveType, days)
	if err != nil {
		return fmt.Errorf("failed to set %s balance for employee %s: %w", leaveType, employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

// ResetAllActive rewrites casual, medical and earned balances for every
// active employee in one statement. Unpaid stays untouched. Returns the
// number of employees affected.
func (r *balanceRepositoryImpl) ResetAllActive(ctx context.Context, casual, medical, earned int) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances lb
		SET balance_days = CASE lb.leave_type
				WHEN 'casual' THEN $1::int
				WHEN 'medical' THEN $2::int
				WHEN 'earned' THEN $3::int
			END,
			updated_at = NOW()
		FROM employees e
		WHERE lb.employee_id = e.id
		AND e.is_active
		AND lb.leave_type IN ('casual', 'medical', 'earned')
	`

	tag, err := q.Exec(ctx, query, casual, medical, earned)
	if err != nil {
		return 0, fmt.Errorf("failed to reset leave balances: %w", err)
	}

	// Three rows per employee.
	return tag.RowsAffected() / 3, nil
}
