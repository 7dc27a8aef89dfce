package leave

import (
	"context"
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

// VisibilityService answers every read that depends on who is asking. The
// visible set per role: team leaders see their direct reports, team
// managers see their department, general managers see everyone except
// other general managers.
type VisibilityService struct {
	employees employee.EmployeeRepository
	requests  leave.LeaveRequestRepository
}

func NewVisibilityService(employees employee.EmployeeRepository, requests leave.LeaveRequestRepository) *VisibilityService {
	return &VisibilityService{employees: employees, requests: requests}
}

// VisibleEmployees resolves the actor's scope to a concrete employee list.
// Non-managerial roles get an empty scope.
func (s *VisibilityService) VisibleEmployees(ctx context.Context, actorID string) ([]employee.Employee, error) {
	actor, err := s.employees.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case employee.RoleGeneralManager:
		return s.employees.ListAllExceptRole(ctx, employee.RoleGeneralManager)
	case employee.RoleTeamManager:
		if actor.DepartmentID == nil {
			return nil, nil
		}
		return s.employees.ListByDepartment(ctx, *actor.DepartmentID)
	case employee.RoleTeamLeader:
		return s.employees.ListByManager(ctx, actor.ID)
	default:
		return nil, leave.ErrNotAuthorized
	}
}

// visibleEmployeeIDs flattens the actor's scope to IDs, leaving the actor
// out. A manager's own requests belong in their superior's queue, never
// their own.
func (s *VisibilityService) visibleEmployeeIDs(ctx context.Context, actorID string) ([]string, error) {
	team, err := s.VisibleEmployees(ctx, actorID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(team))
	for _, member := range team {
		if member.ID == actorID {
			continue
		}
		ids = append(ids, member.ID)
	}
	return ids, nil
}

// ListPending returns the actor's approval queue, oldest application first.
func (s *VisibilityService) ListPending(ctx context.Context, actorID string) ([]leave.LeaveRequestResponse, error) {
	ids, err := s.visibleEmployeeIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	pending, err := s.requests.ListPendingByEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(pending), nil
}

// TeamMembers lists the employees in the actor's scope.
func (s *VisibilityService) TeamMembers(ctx context.Context, actorID string) ([]employee.EmployeeResponse, error) {
	team, err := s.VisibleEmployees(ctx, actorID)
	if err != nil {
		return nil, err
	}

	members := make([]employee.Employee, 0, len(team))
	for _, member := range team {
		if member.ID == actorID {
			continue
		}
		members = append(members, member)
	}
	return employee.ToResponses(members), nil
}

// TeamCalendar returns approved leave in the actor's scope that touches the
// given month.
func (s *VisibilityService) TeamCalendar(ctx context.Context, actorID string, year int, month time.Month) ([]leave.LeaveRequestResponse, error) {
	ids, err := s.visibleEmployeeIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	approved, err := s.requests.ListApprovedInWindow(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(approved), nil
}

// ListMyRequests returns the actor's own history, newest applied first.
func (s *VisibilityService) ListMyRequests(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.requests.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(requests), nil
}

// GetRequest fetches one request; visible to its owner and to any
// managerial role. Reading is broader than acting: approve and reject
// still go through the authorization resolver.
func (s *VisibilityService) GetRequest(ctx context.Context, requestID, actorID string) (leave.LeaveRequestResponse, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if req.EmployeeID != actorID {
		actor, err := s.employees.GetByID(ctx, actorID)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if !actor.Role.IsManagerial() {
			return leave.LeaveRequestResponse{}, leave.ErrNotAuthorized
		}
	}

	return leave.ToResponse(req), nil
}
