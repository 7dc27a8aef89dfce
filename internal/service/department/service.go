package department

import (
	"context"
	"strings"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/department"
)

type Service struct {
	departments department.DepartmentRepository
}

func NewService(departments department.DepartmentRepository) *Service {
	return &Service{departments: departments}
}

func (s *Service) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := s.departments.ExistsByNameOrCode(ctx, req.Name, code)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	if exists {
		return department.DepartmentResponse{}, department.ErrDepartmentExists
	}

	created, err := s.departments.Create(ctx, department.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        code,
		ManagerID:   req.ManagerID,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(dept), nil
}

func (s *Service) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	return department.ToResponses(departments), nil
}

func (s *Service) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.departments.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.Get(ctx, req.ID)
}
