package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/department"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, code, manager_id, description, is_active, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, TRUE, NOW())
		RETURNING id, is_active, created_at
	`

	err := q.QueryRow(ctx, query,
		dept.Name, dept.Code, dept.ManagerID, dept.Description,
	).Scan(&dept.ID, &dept.IsActive, &dept.CreatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to insert department: %w", err)
	}

	return dept, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.code, d.manager_id, d.description, d.is_active, d.created_at,
			   m.first_name || ' ' || m.last_name AS manager_name
		FROM departments d
		LEFT JOIN employees m ON d.manager_id = m.id
		WHERE d.id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Code, &dept.ManagerID, &dept.Description, &dept.IsActive, &dept.CreatedAt,
		&dept.ManagerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return dept, nil
}

func (r *departmentRepositoryImpl) ExistsByNameOrCode(ctx context.Context, name, code string) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM departments WHERE LOWER(name) = LOWER($1) OR code = $2)`,
		name, code,
	).Scan(&exists)
	return exists, err
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.code, d.manager_id, d.description, d.is_active, d.created_at,
			   m.first_name || ' ' || m.last_name AS manager_name
		FROM departments d
		LEFT JOIN employees m ON d.manager_id = m.id
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Code, &dept.ManagerID, &dept.Description, &dept.IsActive, &dept.CreatedAt,
			&dept.ManagerName,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.ManagerID != nil {
		updates = append(updates, fmt.Sprintf("manager_id = $%d", argIdx))
		args = append(args, *req.ManagerID)
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
		return fmt.Errorf("no updatable fields provided for department update")
	}

	args = append(args, req.ID)

	sql := "UPDATE departments SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update department %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments WHERE is_active`).Scan(&count)
	return count, err
}
