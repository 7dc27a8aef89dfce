package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/policy"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

type policyRepositoryImpl struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

const policyColumns = `
	id, name, leave_type,
	annual_quota, max_consecutive_days,
	carry_forward_allowed, carry_forward_max_days,
	requires_approval, minimum_notice_days,
	description, is_active, created_at, updated_at`

func scanPolicy(row pgx.Row) (policy.LeavePolicy, error) {
	var p policy.LeavePolicy
	err := row.Scan(
		&p.ID, &p.Name, &p.LeaveType,
		&p.AnnualQuota, &p.MaxConsecutiveDays,
		&p.CarryForwardAllowed, &p.CarryForwardMaxDays,
		&p.RequiresApproval, &p.MinimumNoticeDays,
		&p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *policyRepositoryImpl) Create(ctx context.Context, p policy.LeavePolicy) (policy.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_policies (
			id, name, leave_type,
			annual_quota, max_consecutive_days,
			carry_forward_allowed, carry_forward_max_days,
			requires_approval, minimum_notice_days,
			description, is_active, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2,
			$3, $4,
			$5, $6,
			$7, $8,
			$9, TRUE, NOW(), NOW()
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Name, p.LeaveType,
		p.AnnualQuota, p.MaxConsecutiveDays,
		p.CarryForwardAllowed, p.CarryForwardMaxDays,
		p.RequiresApproval, p.MinimumNoticeDays,
		p.Description,
	).Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return policy.LeavePolicy{}, fmt.Errorf("failed to insert leave policy: %w", err)
	}

	return p, nil
}

func (r *policyRepositoryImpl) GetByID(ctx context.Context, id string) (policy.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + policyColumns + `
		FROM leave_policies
		WHERE id = $1
	`

	p, err := scanPolicy(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return policy.LeavePolicy{}, policy.ErrPolicyNotFound
		}
		return policy.LeavePolicy{}, err
	}

	return p, nil
}

func (r *policyRepositoryImpl) List(ctx context.Context) ([]policy.LeavePolicy, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + policyColumns + `
		FROM leave_policies
		ORDER BY leave_type ASC, created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []policy.LeavePolicy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return policies, nil
}

func (r *policyRepositoryImpl) Update(ctx context.Context, req policy.UpdatePolicyRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.AnnualQuota != nil {
		updates = append(updates, fmt.Sprintf("annual_quota = $%d", argIdx))
		args = append(args, *req.AnnualQuota)
		argIdx++
	}
	if req.MaxConsecutiveDays != nil {
		updates = append(updates, fmt.Sprintf("max_consecutive_days = $%d", argIdx))
		args = append(args, *req.MaxConsecutiveDays)
		argIdx++
	}
	if req.CarryForwardAllowed != nil {
		updates = append(updates, fmt.Sprintf("carry_forward_allowed = $%d", argIdx))
		args = append(args, *req.CarryForwardAllowed)
		argIdx++
	}
	if req.CarryForwardMaxDays != nil {
		updates = append(updates, fmt.Sprintf("carry_forward_max_days = $%d", argIdx))
		args = append(args, *req.CarryForwardMaxDays)
		argIdx++
	}
	if req.RequiresApproval != nil {
		updates = append(updates, fmt.Sprintf("requires_approval = $%d", argIdx))
		args = append(args, *req.RequiresApproval)
		argIdx++
	}
	if req.MinimumNoticeDays != nil {
		updates = append(updates, fmt.Sprintf("minimum_notice_days = $%d", argIdx))
		args = append(args, *req.MinimumNoticeDays)
		argIdx++
	}
	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for policy update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	sql := "UPDATE leave_policies SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave policy %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return policy.ErrPolicyNotFound
	}
	return nil
}

func (r *policyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_policies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return policy.ErrPolicyNotFound
	}
	return nil
}
