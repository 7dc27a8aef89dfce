package report

import (
	"context"
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/department"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

// Service computes leave usage summaries. Aggregation happens in memory
// over the fetched request collections; the datasets are bounded by a
// single year of one scope.
type Service struct {
	employees   employee.EmployeeRepository
	departments department.DepartmentRepository
	requests    leave.LeaveRequestRepository

	now func() time.Time
}

func NewService(
	employees employee.EmployeeRepository,
	departments department.DepartmentRepository,
	requests leave.LeaveRequestRepository,
) *Service {
	return &Service{
		employees:   employees,
		departments: departments,
		requests:    requests,
		now:         time.Now,
	}
}

// StatusCounts tallies requests per lifecycle status.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}

// DaysByType sums approved days per leave type.
type DaysByType struct {
	Casual  int `json:"casual"`
	Medical int `json:"medical"`
	Earned  int `json:"earned"`
	Unpaid  int `json:"unpaid"`
}

type StatsResponse struct {
	Year              int          `json:"year"`
	TotalRequests     int          `json:"total_requests"`
	Counts            StatusCounts `json:"counts"`
	ApprovedDays      DaysByType   `json:"approved_days"`
	TotalApprovedDays int          `json:"total_approved_days"`
}

type MemberUsage struct {
	Employee     employee.EmployeeResponse `json:"employee"`
	Counts       StatusCounts              `json:"counts"`
	ApprovedDays DaysByType                `json:"approved_days"`
}

type TeamReportResponse struct {
	Year    int           `json:"year"`
	Totals  StatsResponse `json:"totals"`
	Members []MemberUsage `json:"members"`
}

type OrganizationReportResponse struct {
	Year              int                          `json:"year"`
	Totals            StatsResponse                `json:"totals"`
	ActiveEmployees   int64                        `json:"active_employees"`
	ActiveDepartments int64                        `json:"active_departments"`
	RecentRequests    []leave.LeaveRequestResponse `json:"recent_requests"`
}

// MyStats summarizes one employee's own requests for the given year (the
// current year when zero).
func (s *Service) MyStats(ctx context.Context, employeeID string, year int) (StatsResponse, error) {
	year = s.resolveYear(year)

	requests, err := s.requests.ListByEmployee(ctx, employeeID, leave.RequestFilter{Year: &year})
	if err != nil {
		return StatsResponse{}, err
	}

	return aggregate(year, requests), nil
}

// TeamReport summarizes the given scope, with a per-member breakdown.
func (s *Service) TeamReport(ctx context.Context, team []employee.Employee, year int) (TeamReportResponse, error) {
	year = s.resolveYear(year)

	ids := make([]string, 0, len(team))
	for _, member := range team {
		ids = append(ids, member.ID)
	}

	requests, err := s.requests.ListByEmployeesAndYear(ctx, ids, year)
	if err != nil {
		return TeamReportResponse{}, err
	}

	byEmployee := make(map[string][]leave.LeaveRequest)
	for _, req := range requests {
		byEmployee[req.EmployeeID] = append(byEmployee[req.EmployeeID], req)
	}

	members := make([]MemberUsage, 0, len(team))
	for _, member := range team {
		stats := aggregate(year, byEmployee[member.ID])
		members = append(members, MemberUsage{
			Employee:     employee.ToResponse(member),
			Counts:       stats.Counts,
			ApprovedDays: stats.ApprovedDays,
		})
	}

	return TeamReportResponse{
		Year:    year,
		Totals:  aggregate(year, requests),
		Members: members,
	}, nil
}

// OrganizationReport is the administrative overview across all employees.
func (s *Service) OrganizationReport(ctx context.Context, year int) (OrganizationReportResponse, error) {
	year = s.resolveYear(year)

	requests, err := s.requests.ListByYear(ctx, year)
	if err != nil {
		return OrganizationReportResponse{}, err
	}

	activeEmployees, err := s.employees.CountActive(ctx)
	if err != nil {
		return OrganizationReportResponse{}, err
	}
	activeDepartments, err := s.departments.CountActive(ctx)
	if err != nil {
		return OrganizationReportResponse{}, err
	}

	// Listing is newest applied first already.
	recent := requests
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return OrganizationReportResponse{
		Year:              year,
		Totals:            aggregate(year, requests),
		ActiveEmployees:   activeEmployees,
		ActiveDepartments: activeDepartments,
		RecentRequests:    leave.ToResponses(recent),
	}, nil
}

func (s *Service) resolveYear(year int) int {
	if year == 0 {
		return s.now().UTC().Year()
	}
	return year
}

func aggregate(year int, requests []leave.LeaveRequest) StatsResponse {
	stats := StatsResponse{Year: year, TotalRequests: len(requests)}

	for _, req := range requests {
		switch req.Status {
		case leave.StatusPending:
			stats.Counts.Pending++
		case leave.StatusApproved:
			stats.Counts.Approved++
		case leave.StatusRejected:
			stats.Counts.Rejected++
		case leave.StatusCancelled:
			stats.Counts.Cancelled++
		}

		if req.Status != leave.StatusApproved {
			continue
		}
		stats.TotalApprovedDays += req.NumberOfDays
		switch req.Type {
		case leave.LeaveTypeCasual:
			stats.ApprovedDays.Casual += req.NumberOfDays
		case leave.LeaveTypeMedical:
			stats.ApprovedDays.Medical += req.NumberOfDays
		case leave.LeaveTypeEarned:
			stats.ApprovedDays.Earned += req.NumberOfDays
		case leave.LeaveTypeUnpaid:
			stats.ApprovedDays.Unpaid += req.NumberOfDays
		}
	}

	return stats
}
