package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.first_name, e.last_name, e.email, e.password_hash,
	e.role, e.department_id, e.manager_id, e.joining_date, e.is_active,
	e.created_at, e.updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PasswordHash,
		&e.Role, &e.DepartmentID, &e.ManagerID, &e.JoiningDate, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email, password_hash,
			role, department_id, manager_id, joining_date, is_active,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, TRUE,
			NOW(), NOW()
		) RETURNING id, joining_date, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PasswordHash,
		emp.Role, emp.DepartmentID, emp.ManagerID, emp.JoiningDate,
	).Scan(&emp.ID, &emp.JoiningDate, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `,
			   d.name AS department_name,
			   m.first_name || ' ' || m.last_name AS manager_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
		WHERE e.id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PasswordHash,
		&e.Role, &e.DepartmentID, &e.ManagerID, &e.JoiningDate, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.ManagerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

// GetByIDForUpdate locks the employee row until the surrounding transaction
// ends. All request-lifecycle writes for one employee funnel through this
// lock, which serializes balance and overlap checks per employee.
func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `
		FROM employees e
		WHERE e.id = $1
		FOR UPDATE
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `
		FROM employees e
		WHERE LOWER(e.email) = LOWER($1)
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_code = $1)`, code,
	).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.listWhere(ctx, "", nil)
}

func (r *employeeRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return r.listWhere(ctx, "e.manager_id = $1", []interface{}{managerID})
}

func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return r.listWhere(ctx, "e.department_id = $1", []interface{}{departmentID})
}

func (r *employeeRepositoryImpl) ListAllExceptRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return r.listWhere(ctx, "e.role <> $1", []interface{}{role})
}

func (r *employeeRepositoryImpl) listWhere(ctx context.Context, where string, args []interface{}) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `,
			   d.name AS department_name,
			   m.first_name || ' ' || m.last_name AS manager_name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
	`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY e.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PasswordHash,
			&e.Role, &e.DepartmentID, &e.ManagerID, &e.JoiningDate, &e.IsActive,
			&e.CreatedAt, &e.UpdatedAt,
			&e.DepartmentName, &e.ManagerName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := database.GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.FirstName != nil {
		updates = append(updates, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		updates = append(updates, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Email != nil {
		updates = append(updates, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Role != nil {
		updates = append(updates, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *req.Role)
		argIdx++
	}
	if req.DepartmentID != nil {
		updates = append(updates, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *req.DepartmentID)
		argIdx++
	}
	if req.ManagerID != nil {
		updates = append(updates, fmt.Sprintf("manager_id = $%d", argIdx))
		args = append(args, *req.ManagerID)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	sql := "UPDATE employees SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d", argIdx)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active`).Scan(&count)
	return count, err
}
