package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/department"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

type stubRequestRepo struct {
	leave.LeaveRequestRepository
	requests []leave.LeaveRequest
}

func (s *stubRequestRepo) ListByEmployee(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range s.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *stubRequestRepo) ListByEmployeesAndYear(ctx context.Context, employeeIDs []string, year int) ([]leave.LeaveRequest, error) {
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var out []leave.LeaveRequest
	for _, req := range s.requests {
		if ids[req.EmployeeID] && req.StartDate.Year() == year {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *stubRequestRepo) ListByYear(ctx context.Context, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range s.requests {
		if req.StartDate.Year() == year {
			out = append(out, req)
		}
	}
	return out, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active int64
}

func (s *stubEmployeeRepo) CountActive(ctx context.Context) (int64, error) { return s.active, nil }

type stubDepartmentRepo struct {
	department.DepartmentRepository
	active int64
}

func (s *stubDepartmentRepo) CountActive(ctx context.Context) (int64, error) { return s.active, nil }

func request(id, employeeID string, t leave.LeaveType, status leave.Status, days int, start time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:           id,
		EmployeeID:   employeeID,
		Type:         t,
		Status:       status,
		NumberOfDays: days,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, days-1),
		AppliedAt:    start.AddDate(0, 0, -7),
	}
}

func TestMyStats(t *testing.T) {
	march := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &stubRequestRepo{requests: []leave.LeaveRequest{
		request("r1", "alice", leave.LeaveTypeCasual, leave.StatusApproved, 3, march),
		request("r2", "alice", leave.LeaveTypeEarned, leave.StatusApproved, 2, march.AddDate(0, 1, 0)),
		request("r3", "alice", leave.LeaveTypeCasual, leave.StatusRejected, 5, march.AddDate(0, 2, 0)),
		request("r4", "alice", leave.LeaveTypeMedical, leave.StatusPending, 1, march.AddDate(0, 3, 0)),
		request("r5", "alice", leave.LeaveTypeCasual, leave.StatusCancelled, 2, march.AddDate(0, 4, 0)),
	}}

	svc := NewService(&stubEmployeeRepo{}, &stubDepartmentRepo{}, repo)
	stats, err := svc.MyStats(context.Background(), "alice", 2026)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalRequests)
	assert.Equal(t, StatusCounts{Pending: 1, Approved: 2, Rejected: 1, Cancelled: 1}, stats.Counts)
	assert.Equal(t, DaysByType{Casual: 3, Earned: 2}, stats.ApprovedDays, "only approved requests count toward day totals")
	assert.Equal(t, 5, stats.TotalApprovedDays)
}

func TestTeamReport(t *testing.T) {
	march := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &stubRequestRepo{requests: []leave.LeaveRequest{
		request("r1", "alice", leave.LeaveTypeCasual, leave.StatusApproved, 3, march),
		request("r2", "bob", leave.LeaveTypeMedical, leave.StatusApproved, 2, march),
		request("r3", "bob", leave.LeaveTypeCasual, leave.StatusPending, 1, march),
		// outside the requested year
		request("r4", "alice", leave.LeaveTypeCasual, leave.StatusApproved, 4, march.AddDate(-1, 0, 0)),
	}}

	team := []employee.Employee{
		{ID: "alice", FirstName: "Alice"},
		{ID: "bob", FirstName: "Bob"},
		{ID: "carol", FirstName: "Carol"},
	}

	svc := NewService(&stubEmployeeRepo{}, &stubDepartmentRepo{}, repo)
	report, err := svc.TeamReport(context.Background(), team, 2026)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Totals.TotalRequests)
	assert.Equal(t, 5, report.Totals.TotalApprovedDays)

	require.Len(t, report.Members, 3)
	byID := make(map[string]MemberUsage)
	for _, m := range report.Members {
		byID[m.Employee.ID] = m
	}
	assert.Equal(t, DaysByType{Casual: 3}, byID["alice"].ApprovedDays)
	assert.Equal(t, DaysByType{Medical: 2}, byID["bob"].ApprovedDays)
	assert.Equal(t, StatusCounts{Pending: 1, Approved: 1}, byID["bob"].Counts)
	assert.Equal(t, DaysByType{}, byID["carol"].ApprovedDays, "members with no requests appear with zeros")
}

func TestOrganizationReport(t *testing.T) {
	march := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	var requests []leave.LeaveRequest
	for i := 0; i < 12; i++ {
		requests = append(requests, request(
			string(rune('a'+i)), "alice", leave.LeaveTypeCasual, leave.StatusApproved, 1, march.AddDate(0, 0, i*3)))
	}
	repo := &stubRequestRepo{requests: requests}

	svc := NewService(&stubEmployeeRepo{active: 42}, &stubDepartmentRepo{active: 5}, repo)
	report, err := svc.OrganizationReport(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 12, report.Totals.TotalRequests)
	assert.EqualValues(t, 42, report.ActiveEmployees)
	assert.EqualValues(t, 5, report.ActiveDepartments)
	assert.Len(t, report.RecentRequests, 10, "recent list is capped at ten")
}
