package department

import "context"

// DepartmentRepository - interface for the departments table
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	ExistsByNameOrCode(ctx context.Context, name, code string) (bool, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) error
	CountActive(ctx context.Context) (int64, error)
}
