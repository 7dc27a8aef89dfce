package leave

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
)

// fakeTransactor passes the context straight through; the fakes below are
// plain maps, so there is nothing to commit or roll back.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		repo.employees[e.ID] = e
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if emp.ID == "" {
		emp.ID = fmt.Sprintf("emp-%d", len(r.employees)+1)
	}
	emp.IsActive = true
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeEmployeeRepo) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return r.sorted(func(employee.Employee) bool { return true }), nil
}

func (r *fakeEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return r.sorted(func(e employee.Employee) bool {
		return e.ManagerID != nil && *e.ManagerID == managerID
	}), nil
}

func (r *fakeEmployeeRepo) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return r.sorted(func(e employee.Employee) bool {
		return e.DepartmentID != nil && *e.DepartmentID == departmentID
	}), nil
}

func (r *fakeEmployeeRepo) ListAllExceptRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return r.sorted(func(e employee.Employee) bool { return e.Role != role }), nil
}

func (r *fakeEmployeeRepo) sorted(match func(employee.Employee) bool) []employee.Employee {
	var out []employee.Employee
	for _, emp := range r.employees {
		if match(emp) {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	r.employees[req.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = false
	r.employees[id] = emp
	return nil
}

func (r *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	for _, emp := range r.employees {
		if emp.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
	seq      int
	clock    time.Time
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		requests: make(map[string]leave.LeaveRequest),
		clock:    time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.seq++
	r.clock = r.clock.Add(time.Minute)
	req.ID = fmt.Sprintf("req-%d", r.seq)
	req.AppliedAt = r.clock
	req.UpdatedAt = r.clock
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, upd leave.UpdateLeaveRequestRequest) error {
	req, ok := r.requests[upd.ID]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if upd.Status != nil {
		req.Status = *upd.Status
	}
	if upd.ApprovedBy != nil {
		req.ApprovedBy = upd.ApprovedBy
	}
	if upd.ApprovedAt != nil {
		req.ApprovedAt = upd.ApprovedAt
	}
	if upd.RejectionReason != nil {
		req.RejectionReason = upd.RejectionReason
	}
	r.requests[upd.ID] = req
	return nil
}

func (r *fakeRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, req := range r.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if req.Status != leave.StatusPending && req.Status != leave.StatusApproved {
			continue
		}
		if leave.Overlaps(req.StartDate, req.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) ListByEmployee(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	out := r.filtered(func(req leave.LeaveRequest) bool {
		if req.EmployeeID != employeeID {
			return false
		}
		if filter.Status != nil && req.Status != *filter.Status {
			return false
		}
		if filter.Year != nil && req.StartDate.Year() != *filter.Year {
			return false
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeRequestRepo) ListPendingByEmployees(ctx context.Context, employeeIDs []string) ([]leave.LeaveRequest, error) {
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	out := r.filtered(func(req leave.LeaveRequest) bool {
		return req.Status == leave.StatusPending && ids[req.EmployeeID]
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeRequestRepo) ListApprovedInWindow(ctx context.Context, employeeIDs []string, from, to time.Time) ([]leave.LeaveRequest, error) {
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	out := r.filtered(func(req leave.LeaveRequest) bool {
		return req.Status == leave.StatusApproved && ids[req.EmployeeID] &&
			leave.Overlaps(req.StartDate, req.EndDate, from, to)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *fakeRequestRepo) ListByEmployeesAndYear(ctx context.Context, employeeIDs []string, year int) ([]leave.LeaveRequest, error) {
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	out := r.filtered(func(req leave.LeaveRequest) bool {
		return ids[req.EmployeeID] && req.StartDate.Year() == year
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeRequestRepo) ListByYear(ctx context.Context, year int) ([]leave.LeaveRequest, error) {
	out := r.filtered(func(req leave.LeaveRequest) bool {
		return req.StartDate.Year() == year
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *fakeRequestRepo) filtered(match func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if match(req) {
			out = append(out, req)
		}
	}
	return out
}

type fakeBalanceRepo struct {
	balances map[string]leave.Balances
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]leave.Balances)}
}

func (r *fakeBalanceRepo) Init(ctx context.Context, employeeID string, balances leave.Balances) error {
	r.balances[employeeID] = balances
	return nil
}

func (r *fakeBalanceRepo) GetByEmployee(ctx context.Context, employeeID string) (leave.Balances, error) {
	b, ok := r.balances[employeeID]
	if !ok {
		return leave.Balances{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (r *fakeBalanceRepo) Debit(ctx context.Context, employeeID string, t leave.LeaveType, days int) error {
	b, ok := r.balances[employeeID]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	if b.Days(t) < days {
		return leave.ErrInsufficientBalance
	}
	r.set(employeeID, t, b.Days(t)-days)
	return nil
}

func (r *fakeBalanceRepo) Credit(ctx context.Context, employeeID string, t leave.LeaveType, days int) error {
	b, ok := r.balances[employeeID]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	r.set(employeeID, t, b.Days(t)+days)
	return nil
}

func (r *fakeBalanceRepo) Set(ctx context.Context, employeeID string, t leave.LeaveType, days int) error {
	if _, ok := r.balances[employeeID]; !ok {
		return leave.ErrBalanceNotFound
	}
	r.set(employeeID, t, days)
	return nil
}

func (r *fakeBalanceRepo) ResetAllActive(ctx context.Context, casual, medical, earned int) (int64, error) {
	var n int64
	for id, b := range r.balances {
		b.Casual = casual
		b.Medical = medical
		b.Earned = earned
		r.balances[id] = b
		n++
	}
	return n, nil
}

func (r *fakeBalanceRepo) set(employeeID string, t leave.LeaveType, days int) {
	b := r.balances[employeeID]
	switch t {
	case leave.LeaveTypeCasual:
		b.Casual = days
	case leave.LeaveTypeMedical:
		b.Medical = days
	case leave.LeaveTypeEarned:
		b.Earned = days
	case leave.LeaveTypeUnpaid:
		b.Unpaid = days
	}
	r.balances[employeeID] = b
}
