package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			start_date, end_date, number_of_days, reason,
			status, applied_at, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2,
			$3, $4, $5, $6,
			$7, NOW(), NOW(), NOW()
		) RETURNING id, applied_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type,
		request.StartDate, request.EndDate, request.NumberOfDays, request.Reason,
		request.Status,
	).Scan(&request.ID, &request.AppliedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type,
			   lr.start_date, lr.end_date, lr.number_of_days, lr.reason,
			   lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
			   lr.applied_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   a.first_name || ' ' || a.last_name AS approver_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		LEFT JOIN employees a ON lr.approved_by = a.id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type,
		&req.StartDate, &req.EndDate, &req.NumberOfDays, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.AppliedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.ApproverName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.UpdateLeaveRequestRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if request.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *request.Status)
		argIdx++
	}
	if request.ApprovedBy != nil {
		updates = append(updates, fmt.Sprintf("approved_by = $%d", argIdx))
		args = append(args, *request.ApprovedBy)
		argIdx++
	}
	if request.ApprovedAt != nil {
		updates = append(updates, fmt.Sprintf("approved_at = $%d", argIdx))
		args = append(args, *request.ApprovedAt)
		argIdx++
	}
	if request.RejectionReason != nil {
		updates = append(updates, fmt.Sprintf("rejection_reason = $%d", argIdx))
		args = append(args, *request.RejectionReason)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for leave request update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, request.ID)

	sql := "UPDATE leave_requests SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", request.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	// Inclusive bounds on both sides: touching endpoints overlap.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			AND status IN ('pending', 'approved')
			AND start_date <= $3
			AND end_date >= $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists)
	return exists, err
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type,
	lr.start_date, lr.end_date, lr.number_of_days, lr.reason,
	lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.applied_at, lr.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	a.first_name || ' ' || a.last_name AS approver_name`

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	whereClauses := []string{"lr.employee_id = $1"}
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		start, end := yearWindow(*filter.Year)
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date >= $%d AND lr.start_date <= $%d", argIdx, argIdx+1))
		args = append(args, start, end)
		argIdx += 2
	}

	return r.listWhere(ctx, strings.Join(whereClauses, " AND "), "lr.applied_at DESC", args)
}

func (r *leaveRequestRepositoryImpl) ListPendingByEmployees(ctx context.Context, employeeIDs []string) ([]leave.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	return r.listWhere(ctx,
		"lr.status = 'pending' AND lr.employee_id = ANY($1)",
		"lr.applied_at ASC",
		[]interface{}{employeeIDs},
	)
}

func (r *leaveRequestRepositoryImpl) ListApprovedInWindow(ctx context.Context, employeeIDs []string, from, to time.Time) ([]leave.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	return r.listWhere(ctx,
		"lr.status = 'approved' AND lr.employee_id = ANY($1) AND lr.start_date <= $3 AND lr.end_date >= $2",
		"lr.start_date ASC",
		[]interface{}{employeeIDs, from, to},
	)
}

func (r *leaveRequestRepositoryImpl) ListByEmployeesAndYear(ctx context.Context, employeeIDs []string, year int) ([]leave.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	start, end := yearWindow(year)
	return r.listWhere(ctx,
		"lr.employee_id = ANY($1) AND lr.start_date >= $2 AND lr.start_date <= $3",
		"lr.applied_at DESC",
		[]interface{}{employeeIDs, start, end},
	)
}

func (r *leaveRequestRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveRequest, error) {
	start, end := yearWindow(year)
	return r.listWhere(ctx,
		"lr.start_date >= $1 AND lr.start_date <= $2",
		"lr.applied_at DESC",
		[]interface{}{start, end},
	)
}

func (r *leaveRequestRepositoryImpl) listWhere(ctx context.Context, where, orderBy string, args []interface{}) ([]leave.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		LEFT JOIN employees a ON lr.approved_by = a.id
		WHERE ` + where + `
		ORDER BY ` + orderBy

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type,
			&req.StartDate, &req.EndDate, &req.NumberOfDays, &req.Reason,
			&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
			&req.AppliedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.ApproverName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func yearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
