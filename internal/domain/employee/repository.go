package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row for the duration of the
	// surrounding transaction. Request-lifecycle mutations take this lock
	// first so balance checks and overlap checks are serialized per employee.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmployeeCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context) ([]Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
	// ListAllExceptRole returns every employee whose role differs from the
	// given one; used for the general manager's visibility scope.
	ListAllExceptRole(ctx context.Context, role Role) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}
