package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/department"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/employee"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/leave"
	"github.com/leavetrack/leavetrack-backend-go/internal/domain/policy"
	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
	departmentService "github.com/leavetrack/leavetrack-backend-go/internal/service/department"
	employeeService "github.com/leavetrack/leavetrack-backend-go/internal/service/employee"
	leaveService "github.com/leavetrack/leavetrack-backend-go/internal/service/leave"
	policyService "github.com/leavetrack/leavetrack-backend-go/internal/service/policy"
	reportService "github.com/leavetrack/leavetrack-backend-go/internal/service/report"
)

type AdminHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeactivateEmployee(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)

	CreatePolicy(w http.ResponseWriter, r *http.Request)
	ListPolicies(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
	UpdatePolicy(w http.ResponseWriter, r *http.Request)
	DeletePolicy(w http.ResponseWriter, r *http.Request)

	OrganizationReport(w http.ResponseWriter, r *http.Request)
	ResetBalances(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	employees   *employeeService.Service
	departments *departmentService.Service
	policies    *policyService.Service
	balances    *leaveService.BalanceService
	reports     *reportService.Service
}

func NewAdminHandler(
	employees *employeeService.Service,
	departments *departmentService.Service,
	policies *policyService.Service,
	balances *leaveService.BalanceService,
	reports *reportService.Service,
) AdminHandler {
	return &AdminHandlerImpl{
		employees:   employees,
		departments: departments,
		policies:    policies,
		balances:    balances,
		reports:     reports,
	}
}

func (h *AdminHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employees.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

func (h *AdminHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

func (h *AdminHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	emp, err := h.employees.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

func (h *AdminHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.employees.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

func (h *AdminHandlerImpl) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.employees.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated", nil)
}

func (h *AdminHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.departments.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", created)
}

func (h *AdminHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departments.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

func (h *AdminHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	dept, err := h.departments.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dept)
}

func (h *AdminHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.departments.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", updated)
}

func (h *AdminHandlerImpl) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policy.CreatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.policies.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave policy created", created)
}

func (h *AdminHandlerImpl) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policies.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policies)
}

func (h *AdminHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	p, err := h.policies.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *AdminHandlerImpl) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req policy.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.policies.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave policy updated", updated)
}

func (h *AdminHandlerImpl) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.policies.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave policy deleted", nil)
}

func (h *AdminHandlerImpl) OrganizationReport(w http.ResponseWriter, r *http.Request) {
	year, ok := yearFromQuery(w, r)
	if !ok {
		return
	}

	report, err := h.reports.OrganizationReport(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *AdminHandlerImpl) ResetBalances(w http.ResponseWriter, r *http.Request) {
	var req leave.ResetBalancesRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ResetBalances decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	affected, err := h.balances.ResetAllBalances(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balances reset", map[string]int64{"employees_updated": affected})
}
